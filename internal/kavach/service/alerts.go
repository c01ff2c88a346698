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

// AlertService owns operator-raised emergency alerts.
type AlertService struct {
	Store  store.Store
	Events *realtime.Hub
}

func (s *AlertService) Create(ctx context.Context, a domain.Alert) (domain.Alert, error) {
	if strings.TrimSpace(a.Type) == "" || strings.TrimSpace(a.Location) == "" {
		return domain.Alert{}, ErrInvalidInput
	}
	if !domain.ValidSeverity(a.Severity) {
		return domain.Alert{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	a.ID = idx.New().String()
	a.Resolved = false
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.Store.Alerts().CreateAlert(ctx, a); err != nil {
		return domain.Alert{}, err
	}

	notify(s.Events, "alert.created", a)
	return a, nil
}

func (s *AlertService) Update(ctx context.Context, a domain.Alert) (domain.Alert, error) {
	if !domain.ValidSeverity(a.Severity) {
		return domain.Alert{}, ErrInvalidInput
	}

	if err := s.Store.Alerts().UpdateAlert(ctx, a); err != nil {
		return domain.Alert{}, mapStoreErr(err)
	}

	updated, err := s.Store.Alerts().GetAlert(ctx, a.ID)
	if err != nil {
		return domain.Alert{}, mapStoreErr(err)
	}

	notify(s.Events, "alert.updated", updated)
	return updated, nil
}

func (s *AlertService) Resolve(ctx context.Context, id string) error {
	if err := s.Store.Alerts().ResolveAlert(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	notify(s.Events, "alert.resolved", map[string]string{"id": id})
	return nil
}

func (s *AlertService) Get(ctx context.Context, id string) (domain.Alert, error) {
	a, err := s.Store.Alerts().GetAlert(ctx, id)
	return a, mapStoreErr(err)
}

func (s *AlertService) List(ctx context.Context, activeOnly bool) ([]domain.Alert, error) {
	return s.Store.Alerts().ListAlerts(ctx, activeOnly)
}

func (s *AlertService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Alerts().DeleteAlert(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	notify(s.Events, "alert.deleted", map[string]string{"id": id})
	return nil
}
