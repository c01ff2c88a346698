package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sevasetu/kavach/internal/kavach/realtime"
	"github.com/sevasetu/kavach/internal/kavach/store"
)

// DefaultSOSStaleAfter is how long an unattended SOS alert stays active
// before housekeeping auto-resolves it.
const DefaultSOSStaleAfter = 4 * time.Hour

// HousekeepingService periodically cleans up expired database records and
// auto-resolves SOS alerts nobody closed.
type HousekeepingService struct {
	Store         store.Store
	Events        *realtime.Hub
	Logger        *slog.Logger
	Interval      time.Duration
	SOSStaleAfter time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 1 hour.
func NewHousekeepingService(st store.Store, events *realtime.Hub, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:         st,
		Events:        events,
		Logger:        logger,
		Interval:      interval,
		SOSStaleAfter: DefaultSOSStaleAfter,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down, waiting for any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup runs each task independently; one failing doesn't stop the others.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	s.Logger.Debug("starting housekeeping cleanup")

	if err := s.Store.RefreshTokens().DeleteExpiredRefreshTokens(ctx); err != nil {
		s.Logger.Error("failed to delete expired refresh tokens", "error", err)
	}

	if err := s.Store.MFASessions().DeleteExpiredMFASessions(ctx); err != nil {
		s.Logger.Error("failed to delete expired mfa sessions", "error", err)
	}

	resolved, err := s.Store.SOSAlerts().ResolveStaleSOSAlerts(ctx, int64(s.SOSStaleAfter.Seconds()))
	if err != nil {
		s.Logger.Error("failed to resolve stale sos alerts", "error", err)
	} else if resolved > 0 {
		s.Logger.Info("auto-resolved stale sos alerts", "count", resolved)
		notify(s.Events, "sos.auto_resolved", map[string]int64{"count": resolved})
	}
}
