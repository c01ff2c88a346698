package service

import (
	"context"
	"strings"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/crowd"
	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/realtime"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/pkg/idx"
)

// RouteView is a safe route with its live crowd level, derived per-read from
// the worst assessment among the zones the route passes through.
type RouteView struct {
	domain.SafeRoute
	CrowdLevel string `json:"crowdLevel"` // low | medium | high
}

// RouteService manages safe walking routes.
type RouteService struct {
	Store  store.Store
	Events *realtime.Hub
}

func (s *RouteService) Create(ctx context.Context, r domain.SafeRoute) (RouteView, error) {
	if strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "" {
		return RouteView{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	r.ID = idx.New().String()
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := s.Store.SafeRoutes().CreateSafeRoute(ctx, r); err != nil {
		return RouteView{}, err
	}

	v, err := s.routeView(ctx, r)
	if err != nil {
		return RouteView{}, err
	}
	notify(s.Events, "route.created", v)
	return v, nil
}

func (s *RouteService) Update(ctx context.Context, r domain.SafeRoute) (RouteView, error) {
	if strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "" {
		return RouteView{}, ErrInvalidInput
	}

	if err := s.Store.SafeRoutes().UpdateSafeRoute(ctx, r); err != nil {
		return RouteView{}, mapStoreErr(err)
	}

	updated, err := s.Store.SafeRoutes().GetSafeRoute(ctx, r.ID)
	if err != nil {
		return RouteView{}, mapStoreErr(err)
	}

	v, err := s.routeView(ctx, updated)
	if err != nil {
		return RouteView{}, err
	}
	notify(s.Events, "route.updated", v)
	return v, nil
}

func (s *RouteService) Get(ctx context.Context, id string) (RouteView, error) {
	r, err := s.Store.SafeRoutes().GetSafeRoute(ctx, id)
	if err != nil {
		return RouteView{}, mapStoreErr(err)
	}
	return s.routeView(ctx, r)
}

func (s *RouteService) List(ctx context.Context) ([]RouteView, error) {
	routes, err := s.Store.SafeRoutes().ListSafeRoutes(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]RouteView, 0, len(routes))
	for _, r := range routes {
		v, err := s.routeView(ctx, r)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *RouteService) Delete(ctx context.Context, id string) error {
	if err := s.Store.SafeRoutes().DeleteSafeRoute(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	notify(s.Events, "route.deleted", map[string]string{"id": id})
	return nil
}

// routeView derives the crowd level from the busiest linked zone. Routes
// with no linked zones (or only dangling links) read as low.
func (s *RouteService) routeView(ctx context.Context, r domain.SafeRoute) (RouteView, error) {
	worst := crowd.Assessment{Status: crowd.StatusSafe}
	worstRank := 0

	for _, locID := range r.LocationIDs {
		l, err := s.Store.Locations().GetLocation(ctx, locID)
		if err != nil {
			if mapStoreErr(err) == ErrNotFound {
				continue // zone was deleted; the link is stale, not fatal
			}
			return RouteView{}, err
		}
		a := crowd.Classify(l.CurrentCount, l.Capacity)
		if rank := statusRank(a.Status); rank > worstRank {
			worst, worstRank = a, rank
		}
	}

	return RouteView{SafeRoute: r, CrowdLevel: crowd.Level(worst)}, nil
}

func statusRank(status string) int {
	switch status {
	case crowd.StatusCritical:
		return 3
	case crowd.StatusCrowded:
		return 2
	case crowd.StatusModerate:
		return 1
	}
	return 0
}
