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

// VolunteerService manages the volunteer register.
type VolunteerService struct {
	Store  store.Store
	Events *realtime.Hub
}

func (s *VolunteerService) Register(ctx context.Context, v domain.Volunteer) (domain.Volunteer, error) {
	if strings.TrimSpace(v.Name) == "" {
		return domain.Volunteer{}, ErrInvalidInput
	}
	if v.Availability == "" {
		v.Availability = domain.VolunteerAvailable
	}
	if !domain.ValidVolunteerAvailability(v.Availability) {
		return domain.Volunteer{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	v.ID = idx.New().String()
	v.CreatedAt = now
	v.UpdatedAt = now

	if err := s.Store.Volunteers().CreateVolunteer(ctx, v); err != nil {
		return domain.Volunteer{}, err
	}

	notify(s.Events, "volunteer.created", v)
	return v, nil
}

func (s *VolunteerService) Update(ctx context.Context, v domain.Volunteer) (domain.Volunteer, error) {
	if !domain.ValidVolunteerAvailability(v.Availability) {
		return domain.Volunteer{}, ErrInvalidInput
	}

	if err := s.Store.Volunteers().UpdateVolunteer(ctx, v); err != nil {
		return domain.Volunteer{}, mapStoreErr(err)
	}

	updated, err := s.Store.Volunteers().GetVolunteer(ctx, v.ID)
	if err != nil {
		return domain.Volunteer{}, mapStoreErr(err)
	}

	notify(s.Events, "volunteer.updated", updated)
	return updated, nil
}

func (s *VolunteerService) UpdateAvailability(ctx context.Context, id, availability string) (domain.Volunteer, error) {
	if !domain.ValidVolunteerAvailability(availability) {
		return domain.Volunteer{}, ErrInvalidInput
	}

	if err := s.Store.Volunteers().UpdateVolunteerAvailability(ctx, id, availability); err != nil {
		return domain.Volunteer{}, mapStoreErr(err)
	}

	updated, err := s.Store.Volunteers().GetVolunteer(ctx, id)
	if err != nil {
		return domain.Volunteer{}, mapStoreErr(err)
	}

	notify(s.Events, "volunteer.updated", updated)
	return updated, nil
}

func (s *VolunteerService) Get(ctx context.Context, id string) (domain.Volunteer, error) {
	v, err := s.Store.Volunteers().GetVolunteer(ctx, id)
	return v, mapStoreErr(err)
}

// List returns all volunteers, or only those holding the given skill.
func (s *VolunteerService) List(ctx context.Context, skill string) ([]domain.Volunteer, error) {
	if skill = strings.TrimSpace(skill); skill != "" {
		return s.Store.Volunteers().SearchVolunteersBySkill(ctx, skill)
	}
	return s.Store.Volunteers().ListVolunteers(ctx)
}

func (s *VolunteerService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Volunteers().DeleteVolunteer(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	notify(s.Events, "volunteer.deleted", map[string]string{"id": id})
	return nil
}
