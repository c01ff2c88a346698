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

// LostFoundService handles missing person and lost item reports.
type LostFoundService struct {
	Store  store.Store
	Events *realtime.Hub
}

func (s *LostFoundService) Report(ctx context.Context, r domain.LostFoundReport) (domain.LostFoundReport, error) {
	if !domain.ValidLostFoundType(r.Type) || strings.TrimSpace(r.Title) == "" {
		return domain.LostFoundReport{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	r.ID = idx.New().String()
	r.Status = domain.LostFoundStatusLost
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := s.Store.LostFound().CreateLostFoundReport(ctx, r); err != nil {
		return domain.LostFoundReport{}, err
	}

	notify(s.Events, "lost_found.created", r)
	return r, nil
}

// UpdateStatus moves a report through its lifecycle. Only the reporter or an
// admin may touch it.
func (s *LostFoundService) UpdateStatus(ctx context.Context, id, status, actorID, actorRole string) (domain.LostFoundReport, error) {
	if !domain.ValidLostFoundStatus(status) {
		return domain.LostFoundReport{}, ErrInvalidInput
	}

	report, err := s.Store.LostFound().GetLostFoundReport(ctx, id)
	if err != nil {
		return domain.LostFoundReport{}, mapStoreErr(err)
	}
	if actorRole != domain.RoleAdmin && report.ReporterID != actorID {
		return domain.LostFoundReport{}, ErrForbidden
	}

	if err := s.Store.LostFound().UpdateLostFoundStatus(ctx, id, status); err != nil {
		return domain.LostFoundReport{}, mapStoreErr(err)
	}

	report.Status = status
	notify(s.Events, "lost_found.updated", report)
	return report, nil
}

func (s *LostFoundService) Get(ctx context.Context, id string) (domain.LostFoundReport, error) {
	r, err := s.Store.LostFound().GetLostFoundReport(ctx, id)
	return r, mapStoreErr(err)
}

func (s *LostFoundService) List(ctx context.Context) ([]domain.LostFoundReport, error) {
	return s.Store.LostFound().ListLostFoundReports(ctx)
}

func (s *LostFoundService) Delete(ctx context.Context, id string) error {
	if err := s.Store.LostFound().DeleteLostFoundReport(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	notify(s.Events, "lost_found.deleted", map[string]string{"id": id})
	return nil
}
