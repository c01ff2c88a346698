package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/metrics"
	"github.com/sevasetu/kavach/internal/kavach/realtime"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/pkg/idx"
	"github.com/sevasetu/kavach/pkg/slogx"
)

// SOSService handles pilgrim distress signals. Raising one is deliberately
// unvalidating: a panicking user with a broken GPS still gets an alert
// through.
type SOSService struct {
	Store  store.Store
	Events *realtime.Hub
}

// RaiseRequest carries the client-supplied geolocation. Coordinates are
// optional; LocationText covers devices that could not get a fix.
type RaiseRequest struct {
	UserID       string
	UserName     string
	Phone        string
	Latitude     *float64
	Longitude    *float64
	LocationText string
}

func (s *SOSService) Raise(ctx context.Context, req RaiseRequest) (domain.SOSAlert, error) {
	now := time.Now().UTC()

	location := strings.TrimSpace(req.LocationText)
	if req.Latitude != nil && req.Longitude != nil {
		location = fmt.Sprintf("%.4f, %.4f", *req.Latitude, *req.Longitude)
	}
	if location == "" {
		location = "location unavailable"
	}

	alert := domain.SOSAlert{
		ID:        idx.New().String(),
		UserID:    req.UserID,
		UserName:  req.UserName,
		Phone:     req.Phone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Location:  location,
		Status:    domain.SOSActive,
		Priority:  "critical",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.SOSAlerts().CreateSOSAlert(ctx, alert); err != nil {
		return domain.SOSAlert{}, err
	}

	metrics.SOSAlertsRaised.Inc()
	slogx.FromContext(ctx).Info("sos alert raised", "sos_id", alert.ID, "user_id", req.UserID)
	notify(s.Events, "sos.created", alert)
	return alert, nil
}

func (s *SOSService) UpdateStatus(ctx context.Context, id, status string) (domain.SOSAlert, error) {
	if !domain.ValidSOSStatus(status) {
		return domain.SOSAlert{}, ErrInvalidInput
	}

	if err := s.Store.SOSAlerts().UpdateSOSAlertStatus(ctx, id, status); err != nil {
		return domain.SOSAlert{}, mapStoreErr(err)
	}

	updated, err := s.Store.SOSAlerts().GetSOSAlert(ctx, id)
	if err != nil {
		return domain.SOSAlert{}, mapStoreErr(err)
	}

	notify(s.Events, "sos.updated", updated)
	return updated, nil
}

func (s *SOSService) Get(ctx context.Context, id string) (domain.SOSAlert, error) {
	a, err := s.Store.SOSAlerts().GetSOSAlert(ctx, id)
	return a, mapStoreErr(err)
}

func (s *SOSService) List(ctx context.Context, activeOnly bool) ([]domain.SOSAlert, error) {
	return s.Store.SOSAlerts().ListSOSAlerts(ctx, activeOnly)
}
