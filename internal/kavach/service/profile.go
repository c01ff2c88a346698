package service

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/metrics"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/pkg/slogx"
)

// ProfileService owns the resolution chain: primary store, then fallback
// store, then a synthesized default. Resolution never fails; every session
// start runs it so a broken profile row can never lock a user out.
type ProfileService struct {
	Primary  store.Profiles
	Fallback store.ProfileFallback

	breaker *gobreaker.CircuitBreaker[domain.Profile]
}

// NewProfileService wires the resolution chain with a circuit breaker in
// front of the primary store. Once the breaker opens, resolution goes
// straight to the fallback until the primary recovers.
func NewProfileService(primary store.Profiles, fallback store.ProfileFallback) *ProfileService {
	breaker := gobreaker.NewCircuitBreaker[domain.Profile](gobreaker.Settings{
		Name:    "profile-primary",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			// A clean miss is a working store, not a failing one.
			return err == nil || errors.Is(err, store.ErrNotFound)
		},
	})

	return &ProfileService{
		Primary:  primary,
		Fallback: fallback,
		breaker:  breaker,
	}
}

// Resolve returns the profile for an identity, whatever it takes:
//
//  1. primary store
//  2. fallback store
//  3. synthesize a default (role=user) and persist it
//
// Stored roles outside the known set are coerced to user on the way out.
func (s *ProfileService) Resolve(ctx context.Context, userID, email string) domain.Profile {
	log := slogx.FromContext(ctx)

	p, err := s.breaker.Execute(func() (domain.Profile, error) {
		return s.Primary.GetProfile(ctx, userID)
	})
	if err == nil {
		return s.normalize(ctx, p)
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Warn("primary profile store unavailable", "user_id", userID, "err", err)
	}

	if p, ferr := s.Fallback.Get(ctx, userID); ferr == nil {
		metrics.ProfileResolutionDegraded.WithLabelValues("fallback").Inc()
		return s.normalize(ctx, p)
	}

	// Nothing stored anywhere; synthesize and persist so the next session
	// start finds it.
	p = domain.DefaultProfile(userID, email, time.Now().UTC())
	metrics.ProfileResolutionDegraded.WithLabelValues("synthesized").Inc()
	log.Info("synthesized default profile", "user_id", userID)

	s.save(ctx, p)
	return p
}

// Save persists a profile to exactly one store: primary if it accepts the
// write, fallback otherwise. The error is only returned when both reject it,
// which callers treat as fatal.
func (s *ProfileService) Save(ctx context.Context, p domain.Profile) error {
	_, err := s.breaker.Execute(func() (domain.Profile, error) {
		return domain.Profile{}, s.Primary.PutProfile(ctx, p)
	})
	if err == nil {
		return nil
	}

	slogx.FromContext(ctx).Warn("primary profile write failed, using fallback", "user_id", p.ID, "err", err)
	if err := s.Fallback.Put(ctx, p); err != nil {
		return err
	}
	metrics.FallbackProfileWrites.Inc()
	return nil
}

// save is Save for paths where the caller cannot do anything with the error.
func (s *ProfileService) save(ctx context.Context, p domain.Profile) {
	if err := s.Save(ctx, p); err != nil {
		slogx.FromContext(ctx).Error("profile persist failed in both stores", "user_id", p.ID, "err", err)
	}
}

// normalize coerces an invalid stored role to user. The coercion is counted
// but never surfaced to the caller.
func (s *ProfileService) normalize(ctx context.Context, p domain.Profile) domain.Profile {
	if domain.ValidRole(p.Role) {
		return p
	}

	slogx.FromContext(ctx).Warn("invalid role stored on profile, coercing to user",
		"user_id", p.ID, "stored_role", p.Role)
	metrics.InvalidRoleStored.Inc()

	p.Role = domain.RoleUser
	return p
}
