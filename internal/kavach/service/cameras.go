package service

import (
	"context"
	"strings"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/realtime"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/pkg/idx"
)

// CameraService manages the surveillance camera registry.
type CameraService struct {
	Store  store.Store
	Events *realtime.Hub
}

func (s *CameraService) Create(ctx context.Context, c domain.Camera) (domain.Camera, error) {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Location) == "" {
		return domain.Camera{}, ErrInvalidInput
	}
	if c.Status == "" {
		c.Status = domain.CameraActive
	}
	if !domain.ValidCameraStatus(c.Status) {
		return domain.Camera{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	c.ID = idx.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.Store.Cameras().CreateCamera(ctx, c); err != nil {
		return domain.Camera{}, err
	}

	notify(s.Events, "camera.created", c)
	return c, nil
}

func (s *CameraService) Update(ctx context.Context, c domain.Camera) (domain.Camera, error) {
	if !domain.ValidCameraStatus(c.Status) {
		return domain.Camera{}, ErrInvalidInput
	}

	if err := s.Store.Cameras().UpdateCamera(ctx, c); err != nil {
		return domain.Camera{}, mapStoreErr(err)
	}

	updated, err := s.Store.Cameras().GetCamera(ctx, c.ID)
	if err != nil {
		return domain.Camera{}, mapStoreErr(err)
	}

	notify(s.Events, "camera.updated", updated)
	return updated, nil
}

func (s *CameraService) UpdateStatus(ctx context.Context, id, status string) (domain.Camera, error) {
	if !domain.ValidCameraStatus(status) {
		return domain.Camera{}, ErrInvalidInput
	}

	if err := s.Store.Cameras().UpdateCameraStatus(ctx, id, status); err != nil {
		return domain.Camera{}, mapStoreErr(err)
	}

	updated, err := s.Store.Cameras().GetCamera(ctx, id)
	if err != nil {
		return domain.Camera{}, mapStoreErr(err)
	}

	notify(s.Events, "camera.updated", updated)
	return updated, nil
}

func (s *CameraService) Get(ctx context.Context, id string) (domain.Camera, error) {
	c, err := s.Store.Cameras().GetCamera(ctx, id)
	return c, mapStoreErr(err)
}

func (s *CameraService) List(ctx context.Context) ([]domain.Camera, error) {
	return s.Store.Cameras().ListCameras(ctx)
}

func (s *CameraService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Cameras().DeleteCamera(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	notify(s.Events, "camera.deleted", map[string]string{"id": id})
	return nil
}
