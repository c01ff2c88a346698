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

// HealthUnitService manages the medical posts registry.
type HealthUnitService struct {
	Store  store.Store
	Events *realtime.Hub
}

func (s *HealthUnitService) Create(ctx context.Context, h domain.HealthUnit) (domain.HealthUnit, error) {
	if strings.TrimSpace(h.Name) == "" || strings.TrimSpace(h.Location) == "" {
		return domain.HealthUnit{}, ErrInvalidInput
	}
	if h.Status == "" {
		h.Status = domain.HealthUnitActive
	}
	if !domain.ValidHealthUnitStatus(h.Status) {
		return domain.HealthUnit{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	h.ID = idx.New().String()
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := s.Store.HealthUnits().CreateHealthUnit(ctx, h); err != nil {
		return domain.HealthUnit{}, err
	}

	notify(s.Events, "health_unit.created", h)
	return h, nil
}

func (s *HealthUnitService) Update(ctx context.Context, h domain.HealthUnit) (domain.HealthUnit, error) {
	if !domain.ValidHealthUnitStatus(h.Status) {
		return domain.HealthUnit{}, ErrInvalidInput
	}

	if err := s.Store.HealthUnits().UpdateHealthUnit(ctx, h); err != nil {
		return domain.HealthUnit{}, mapStoreErr(err)
	}

	updated, err := s.Store.HealthUnits().GetHealthUnit(ctx, h.ID)
	if err != nil {
		return domain.HealthUnit{}, mapStoreErr(err)
	}

	notify(s.Events, "health_unit.updated", updated)
	return updated, nil
}

func (s *HealthUnitService) UpdateStatus(ctx context.Context, id, status string) (domain.HealthUnit, error) {
	if !domain.ValidHealthUnitStatus(status) {
		return domain.HealthUnit{}, ErrInvalidInput
	}

	if err := s.Store.HealthUnits().UpdateHealthUnitStatus(ctx, id, status); err != nil {
		return domain.HealthUnit{}, mapStoreErr(err)
	}

	updated, err := s.Store.HealthUnits().GetHealthUnit(ctx, id)
	if err != nil {
		return domain.HealthUnit{}, mapStoreErr(err)
	}

	notify(s.Events, "health_unit.updated", updated)
	return updated, nil
}

func (s *HealthUnitService) Get(ctx context.Context, id string) (domain.HealthUnit, error) {
	h, err := s.Store.HealthUnits().GetHealthUnit(ctx, id)
	return h, mapStoreErr(err)
}

func (s *HealthUnitService) List(ctx context.Context) ([]domain.HealthUnit, error) {
	return s.Store.HealthUnits().ListHealthUnits(ctx)
}

func (s *HealthUnitService) Delete(ctx context.Context, id string) error {
	if err := s.Store.HealthUnits().DeleteHealthUnit(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	notify(s.Events, "health_unit.deleted", map[string]string{"id": id})
	return nil
}
