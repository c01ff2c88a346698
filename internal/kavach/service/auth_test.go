package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/internal/kavach/store/drivers/badgerdb"
	"github.com/sevasetu/kavach/internal/kavach/store/drivers/sqlite"
	"github.com/sevasetu/kavach/pkg/jwtx"
)

type authFixture struct {
	store    *sqlite.Store
	fallback *badgerdb.ProfileStore
	profiles *ProfileService
	auth     *AuthService
	verifier *jwtx.Verifier
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "kavach.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	fallback, err := badgerdb.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = fallback.Close() })

	signer, err := jwtx.NewSigner()
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	profiles := NewProfileService(st.Profiles(), fallback)

	return &authFixture{
		store:    st,
		fallback: fallback,
		profiles: profiles,
		auth: &AuthService{
			Store:      st,
			Profiles:   profiles,
			Signer:     signer,
			Issuer:     "kavach-test",
			AccessTTL:  time.Minute,
			RefreshTTL: time.Hour,
		},
		verifier: jwtx.NewVerifier(keys, "kavach-test"),
	}
}

func TestRegisterThenLoginPreservesRole(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	profile, err := f.auth.Register(ctx, "ops@example.com", "s3cretpass", "Ops", "", domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, profile.Role)

	pair, challenge, err := f.auth.Login(ctx, "ops@example.com", "s3cretpass")
	require.NoError(t, err)
	require.Nil(t, challenge)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := f.verifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, claims.Role)
	require.Equal(t, "ops@example.com", claims.Email)
}

func TestRegisterNormalizesUnknownRole(t *testing.T) {
	f := newAuthFixture(t)

	profile, err := f.auth.Register(context.Background(), "p@example.com", "s3cretpass", "P", "", "superuser")
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, profile.Role)
}

func TestRegisterRejectsDuplicateAndWeakPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, "dup@example.com", "s3cretpass", "", "", domain.RoleUser)
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, "dup@example.com", "anotherpass", "", "", domain.RoleUser)
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = f.auth.Register(ctx, "short@example.com", "short", "", "", domain.RoleUser)
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginRejectsBadCredentialsUniformly(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, "a@example.com", "s3cretpass", "", "", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = f.auth.Login(ctx, "a@example.com", "wrongpassword")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = f.auth.Login(ctx, "nobody@example.com", "s3cretpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, "r@example.com", "s3cretpass", "", "", domain.RoleUser)
	require.NoError(t, err)
	pair, _, err := f.auth.Login(ctx, "r@example.com", "s3cretpass")
	require.NoError(t, err)

	rotated, err := f.auth.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The session survives rotation.
	oldClaims, err := f.verifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	newClaims, err := f.verifier.Verify(rotated.AccessToken)
	require.NoError(t, err)
	require.Equal(t, oldClaims.SID, newClaims.SID)

	// The spent refresh token is dead.
	_, err = f.auth.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefreshPicksUpRoleChange(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	profile, err := f.auth.Register(ctx, "promo@example.com", "s3cretpass", "", "", domain.RoleUser)
	require.NoError(t, err)
	pair, _, err := f.auth.Login(ctx, "promo@example.com", "s3cretpass")
	require.NoError(t, err)

	require.NoError(t, f.store.Profiles().UpdateProfileRole(ctx, profile.ID, domain.RoleAdmin))

	rotated, err := f.auth.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	claims, err := f.verifier.Verify(rotated.AccessToken)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLogoutIsIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, "l@example.com", "s3cretpass", "", "", domain.RoleUser)
	require.NoError(t, err)
	pair, _, err := f.auth.Login(ctx, "l@example.com", "s3cretpass")
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx, pair.RefreshToken))
	require.NoError(t, f.auth.Logout(ctx, pair.RefreshToken))
	require.NoError(t, f.auth.Logout(ctx, "never-issued"))

	_, err = f.auth.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

// failingProfiles rejects everything, standing in for a primary store outage.
type failingProfiles struct{}

var errPrimaryDown = errors.New("primary store down")

func (failingProfiles) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	return domain.Profile{}, errPrimaryDown
}

func (failingProfiles) PutProfile(ctx context.Context, p domain.Profile) error {
	return errPrimaryDown
}

func (failingProfiles) UpdateProfileRole(ctx context.Context, userID, role string) error {
	return errPrimaryDown
}

var _ store.Profiles = failingProfiles{}

func TestRegisterFallsBackWhenPrimaryProfileWriteFails(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.auth.Profiles = NewProfileService(failingProfiles{}, f.fallback)

	profile, err := f.auth.Register(ctx, "fb@example.com", "s3cretpass", "FB", "", domain.RoleAdmin)
	require.NoError(t, err)

	// The profile landed in the fallback store, not the primary.
	stored, err := f.fallback.Get(ctx, profile.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, stored.Role)

	_, err = f.store.Profiles().GetProfile(ctx, profile.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Login still resolves the role from the fallback.
	pair, _, err := f.auth.Login(ctx, "fb@example.com", "s3cretpass")
	require.NoError(t, err)

	claims, err := f.verifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, claims.Role)
}
