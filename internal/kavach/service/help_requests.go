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

// HelpRequestService routes pilgrim assistance requests to the admin console.
type HelpRequestService struct {
	Store  store.Store
	Events *realtime.Hub
}

func (s *HelpRequestService) Create(ctx context.Context, h domain.HelpRequest) (domain.HelpRequest, error) {
	if strings.TrimSpace(h.Type) == "" {
		return domain.HelpRequest{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	h.ID = idx.New().String()
	h.Priority = domain.HelpPriorityFor(h.Type)
	h.Status = domain.HelpPending
	h.AssignedTo = ""
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := s.Store.HelpRequests().CreateHelpRequest(ctx, h); err != nil {
		return domain.HelpRequest{}, err
	}

	notify(s.Events, "help_request.created", h)
	return h, nil
}

func (s *HelpRequestService) UpdateStatus(ctx context.Context, id, status, assignedTo string) (domain.HelpRequest, error) {
	if !domain.ValidHelpStatus(status) {
		return domain.HelpRequest{}, ErrInvalidInput
	}

	if err := s.Store.HelpRequests().UpdateHelpRequestStatus(ctx, id, status, assignedTo); err != nil {
		return domain.HelpRequest{}, mapStoreErr(err)
	}

	updated, err := s.Store.HelpRequests().GetHelpRequest(ctx, id)
	if err != nil {
		return domain.HelpRequest{}, mapStoreErr(err)
	}

	notify(s.Events, "help_request.updated", updated)
	return updated, nil
}

func (s *HelpRequestService) Get(ctx context.Context, id string) (domain.HelpRequest, error) {
	h, err := s.Store.HelpRequests().GetHelpRequest(ctx, id)
	return h, mapStoreErr(err)
}

func (s *HelpRequestService) List(ctx context.Context) ([]domain.HelpRequest, error) {
	return s.Store.HelpRequests().ListHelpRequests(ctx)
}

func (s *HelpRequestService) Delete(ctx context.Context, id string) error {
	if err := s.Store.HelpRequests().DeleteHelpRequest(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	notify(s.Events, "help_request.deleted", map[string]string{"id": id})
	return nil
}
