package badgerdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/store"
)

func newTestProfileStore(t *testing.T) *ProfileStore {
	t.Helper()

	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestProfileRoundTrip(t *testing.T) {
	s := newTestProfileStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	p := domain.Profile{
		ID:          "01HZXK3V9Q",
		Email:       "asha@example.com",
		DisplayName: "Asha",
		Role:        domain.RoleAdmin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.Put(ctx, p))

	got, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.Role, got.Role)
	require.Equal(t, p.DisplayName, got.DisplayName)
	require.True(t, p.CreatedAt.Equal(got.CreatedAt))
}

func TestProfileMissing(t *testing.T) {
	s := newTestProfileStore(t)

	_, err := s.Get(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProfileOverwrite(t *testing.T) {
	s := newTestProfileStore(t)
	ctx := context.Background()

	p := domain.Profile{ID: "u1", Email: "u1@example.com", DisplayName: "First", Role: domain.RoleUser}
	require.NoError(t, s.Put(ctx, p))

	p.DisplayName = "Second"
	require.NoError(t, s.Put(ctx, p))

	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "Second", got.DisplayName)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put(context.Background(), domain.Profile{ID: "u1", Role: domain.RoleUser}))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, got.Role)
}
