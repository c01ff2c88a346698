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

// FoodPointService manages community food donation posts.
type FoodPointService struct {
	Store  store.Store
	Events *realtime.Hub
}

func (s *FoodPointService) Post(ctx context.Context, f domain.FoodPoint) (domain.FoodPoint, error) {
	if strings.TrimSpace(f.FoodType) == "" || strings.TrimSpace(f.Location) == "" {
		return domain.FoodPoint{}, ErrInvalidInput
	}
	if f.Status == "" {
		f.Status = domain.FoodAvailable
	}
	if !domain.ValidFoodStatus(f.Status) || f.Portions < 0 {
		return domain.FoodPoint{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	f.ID = idx.New().String()
	f.CreatedAt = now
	f.UpdatedAt = now

	if err := s.Store.FoodPoints().CreateFoodPoint(ctx, f); err != nil {
		return domain.FoodPoint{}, err
	}

	notify(s.Events, "food_point.created", f)
	return f, nil
}

// UpdateStatus marks stock levels. Only the donor or an admin may change it.
func (s *FoodPointService) UpdateStatus(ctx context.Context, id, status, actorID, actorRole string) (domain.FoodPoint, error) {
	if !domain.ValidFoodStatus(status) {
		return domain.FoodPoint{}, ErrInvalidInput
	}

	point, err := s.Store.FoodPoints().GetFoodPoint(ctx, id)
	if err != nil {
		return domain.FoodPoint{}, mapStoreErr(err)
	}
	if actorRole != domain.RoleAdmin && point.DonorID != actorID {
		return domain.FoodPoint{}, ErrForbidden
	}

	if err := s.Store.FoodPoints().UpdateFoodPointStatus(ctx, id, status); err != nil {
		return domain.FoodPoint{}, mapStoreErr(err)
	}

	point.Status = status
	notify(s.Events, "food_point.updated", point)
	return point, nil
}

func (s *FoodPointService) Get(ctx context.Context, id string) (domain.FoodPoint, error) {
	f, err := s.Store.FoodPoints().GetFoodPoint(ctx, id)
	return f, mapStoreErr(err)
}

func (s *FoodPointService) List(ctx context.Context) ([]domain.FoodPoint, error) {
	return s.Store.FoodPoints().ListFoodPoints(ctx)
}

func (s *FoodPointService) Delete(ctx context.Context, id string) error {
	if err := s.Store.FoodPoints().DeleteFoodPoint(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	notify(s.Events, "food_point.deleted", map[string]string{"id": id})
	return nil
}
