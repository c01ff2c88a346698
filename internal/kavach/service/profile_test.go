package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/internal/kavach/store/drivers/badgerdb"
	"github.com/sevasetu/kavach/internal/kavach/store/drivers/sqlite"
	"github.com/sevasetu/kavach/pkg/idx"
)

func newProfileFixture(t *testing.T) (*ProfileService, *sqlite.Store, *badgerdb.ProfileStore) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	fallback, err := badgerdb.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = fallback.Close() })

	return NewProfileService(st.Profiles(), fallback), st, fallback
}

// seedUser satisfies the users FK so profile rows can be inserted directly.
func seedUser(t *testing.T, st *sqlite.Store, email string) string {
	t.Helper()
	now := time.Now().UTC()
	id := idx.New().String()
	require.NoError(t, st.Users().CreateUser(context.Background(), domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	}))
	return id
}

func TestResolveReadsPrimary(t *testing.T) {
	svc, st, _ := newProfileFixture(t)
	ctx := context.Background()

	id := seedUser(t, st, "primary@example.com")
	now := time.Now().UTC()
	require.NoError(t, st.Profiles().PutProfile(ctx, domain.Profile{
		ID:          id,
		Email:       "primary@example.com",
		DisplayName: "Primary",
		Role:        domain.RoleAdmin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}))

	p := svc.Resolve(ctx, id, "primary@example.com")
	require.Equal(t, domain.RoleAdmin, p.Role)
	require.Equal(t, "Primary", p.DisplayName)
}

func TestResolveCoercesInvalidStoredRole(t *testing.T) {
	svc, st, _ := newProfileFixture(t)
	ctx := context.Background()

	id := seedUser(t, st, "weird@example.com")
	now := time.Now().UTC()
	require.NoError(t, st.Profiles().PutProfile(ctx, domain.Profile{
		ID:        id,
		Email:     "weird@example.com",
		Role:      "superuser",
		CreatedAt: now,
		UpdatedAt: now,
	}))

	p := svc.Resolve(ctx, id, "weird@example.com")
	require.Equal(t, domain.RoleUser, p.Role)

	// The stored row keeps its original value; coercion happens on read.
	stored, err := st.Profiles().GetProfile(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "superuser", stored.Role)
}

func TestResolveSynthesizesAndPersistsDefault(t *testing.T) {
	svc, st, _ := newProfileFixture(t)
	ctx := context.Background()

	id := seedUser(t, st, "new@example.com")

	p := svc.Resolve(ctx, id, "new@example.com")
	require.Equal(t, domain.RoleUser, p.Role)
	require.Equal(t, "new@example.com", p.Email)
	require.Equal(t, "new@example.com", p.DisplayName)

	// The synthesized profile was written back to the primary store.
	stored, err := st.Profiles().GetProfile(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, stored.Role)
}

func TestResolveIsIdempotent(t *testing.T) {
	svc, st, _ := newProfileFixture(t)
	ctx := context.Background()

	id := seedUser(t, st, "idem@example.com")

	first := svc.Resolve(ctx, id, "idem@example.com")
	second := svc.Resolve(ctx, id, "idem@example.com")
	third := svc.Resolve(ctx, id, "idem@example.com")

	require.Equal(t, first.Role, second.Role)
	require.Equal(t, first.Email, second.Email)
	require.Equal(t, first.DisplayName, second.DisplayName)
	require.Equal(t, second, third)
}

func TestResolveUsesFallbackWhenPrimaryFails(t *testing.T) {
	fallback, err := badgerdb.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = fallback.Close() })

	svc := NewProfileService(failingProfiles{}, fallback)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, fallback.Put(ctx, domain.Profile{
		ID:        "u1",
		Email:     "fb@example.com",
		Role:      domain.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	p := svc.Resolve(ctx, "u1", "fb@example.com")
	require.Equal(t, domain.RoleAdmin, p.Role)
}

func TestResolveSynthesizesWhenEverythingIsEmpty(t *testing.T) {
	fallback, err := badgerdb.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = fallback.Close() })

	svc := NewProfileService(failingProfiles{}, fallback)
	ctx := context.Background()

	p := svc.Resolve(ctx, "ghost", "ghost@example.com")
	require.Equal(t, domain.RoleUser, p.Role)
	require.Equal(t, "ghost@example.com", p.Email)

	// With the primary down the synthesized profile lands in the fallback.
	stored, err := fallback.Get(ctx, "ghost")
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, stored.Role)
}

func TestSaveWritesExactlyOneStore(t *testing.T) {
	svc, st, fallback := newProfileFixture(t)
	ctx := context.Background()

	id := seedUser(t, st, "one@example.com")
	now := time.Now().UTC()
	p := domain.Profile{
		ID:        id,
		Email:     "one@example.com",
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, svc.Save(ctx, p))

	_, err := st.Profiles().GetProfile(ctx, id)
	require.NoError(t, err)

	_, err = fallback.Get(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)
}
