package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/crowd"
	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/realtime"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/pkg/idx"
)

// LocationView is a location with its derived crowd assessment. The
// assessment is computed on every read, never stored.
type LocationView struct {
	domain.Location
	crowd.Assessment
}

// LocationService owns the crowd zones. Writes validate occupancy against
// capacity; reads tolerate whatever is stored and let the classifier and the
// display clamp deal with it.
type LocationService struct {
	Store  store.Store
	Events *realtime.Hub
}

func view(l domain.Location) LocationView {
	return LocationView{
		Location:   l,
		Assessment: crowd.Classify(l.CurrentCount, l.Capacity),
	}
}

func (s *LocationService) Create(ctx context.Context, l domain.Location) (LocationView, error) {
	if strings.TrimSpace(l.Name) == "" || l.Capacity <= 0 {
		return LocationView{}, ErrInvalidInput
	}
	if l.CurrentCount < 0 || l.CurrentCount > l.Capacity {
		return LocationView{}, ErrInvalidOccupancy
	}

	now := time.Now().UTC()
	l.ID = idx.New().String()
	l.CreatedAt = now
	l.UpdatedAt = now

	if err := s.Store.Locations().CreateLocation(ctx, l); err != nil {
		return LocationView{}, err
	}

	v := view(l)
	notify(s.Events, "location.created", v)
	return v, nil
}

func (s *LocationService) Update(ctx context.Context, l domain.Location) (LocationView, error) {
	if strings.TrimSpace(l.Name) == "" || l.Capacity <= 0 {
		return LocationView{}, ErrInvalidInput
	}
	if l.CurrentCount < 0 || l.CurrentCount > l.Capacity {
		return LocationView{}, ErrInvalidOccupancy
	}

	if err := s.Store.Locations().UpdateLocation(ctx, l); err != nil {
		return LocationView{}, mapStoreErr(err)
	}

	updated, err := s.Store.Locations().GetLocation(ctx, l.ID)
	if err != nil {
		return LocationView{}, mapStoreErr(err)
	}

	v := view(updated)
	notify(s.Events, "location.updated", v)
	return v, nil
}

// UpdateCount is the live-feed path: only the occupancy changes.
func (s *LocationService) UpdateCount(ctx context.Context, id string, count int) (LocationView, error) {
	l, err := s.Store.Locations().GetLocation(ctx, id)
	if err != nil {
		return LocationView{}, mapStoreErr(err)
	}
	if count < 0 || count > l.Capacity {
		return LocationView{}, ErrInvalidOccupancy
	}

	if err := s.Store.Locations().UpdateLocationCount(ctx, id, count); err != nil {
		return LocationView{}, mapStoreErr(err)
	}

	l.CurrentCount = count
	v := view(l)
	notify(s.Events, "location.updated", v)
	return v, nil
}

func (s *LocationService) Get(ctx context.Context, id string) (LocationView, error) {
	l, err := s.Store.Locations().GetLocation(ctx, id)
	if err != nil {
		return LocationView{}, mapStoreErr(err)
	}
	return view(l), nil
}

func (s *LocationService) List(ctx context.Context) ([]LocationView, error) {
	locations, err := s.Store.Locations().ListLocations(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]LocationView, 0, len(locations))
	for _, l := range locations {
		views = append(views, view(l))
	}
	return views, nil
}

func (s *LocationService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Locations().DeleteLocation(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	notify(s.Events, "location.deleted", map[string]string{"id": id})
	return nil
}

// mapStoreErr translates store sentinels to service sentinels so handlers
// only deal with one error vocabulary.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	default:
		return err
	}
}
