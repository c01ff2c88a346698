package service

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

func TestMFAEnrollActivateLogin(t *testing.T) {
	f := newAuthFixture(t)
	mfa := &MFAService{Store: f.store, Issuer: "kavach-test"}
	ctx := context.Background()

	profile, err := f.auth.Register(ctx, "mfa@example.com", "s3cretpass", "", "", domain.RoleAdmin)
	require.NoError(t, err)

	enroll, err := mfa.Enroll(ctx, profile.ID)
	require.NoError(t, err)
	require.NotEmpty(t, enroll.Secret)
	require.Contains(t, enroll.QRCode, "otpauth://")

	// Enrollment alone does not gate logins yet.
	pair, challenge, err := f.auth.Login(ctx, "mfa@example.com", "s3cretpass")
	require.NoError(t, err)
	require.Nil(t, challenge)
	require.NotNil(t, pair)

	require.ErrorIs(t, mfa.Activate(ctx, profile.ID, "000000"), ErrInvalidGrant)

	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, mfa.Activate(ctx, profile.ID, code))

	// Login now opens a challenge instead of issuing tokens.
	pair, challenge, err = f.auth.Login(ctx, "mfa@example.com", "s3cretpass")
	require.NoError(t, err)
	require.Nil(t, pair)
	require.NotNil(t, challenge)
	require.True(t, challenge.MFARequired)
	require.Equal(t, []string{"totp"}, challenge.Methods)

	code, err = totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	pair, err = f.auth.CompleteMFA(ctx, challenge.MFAToken, code)
	require.NoError(t, err)

	claims, err := f.verifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, claims.Role)
	require.Contains(t, claims.AMR, "otp")

	// A spent challenge cannot be replayed.
	_, err = f.auth.CompleteMFA(ctx, challenge.MFAToken, code)
	require.ErrorIs(t, err, ErrInvalidGrant)
}

func TestCompleteMFALocksOutAfterMaxAttempts(t *testing.T) {
	f := newAuthFixture(t)
	mfa := &MFAService{Store: f.store, Issuer: "kavach-test"}
	ctx := context.Background()

	profile, err := f.auth.Register(ctx, "lock@example.com", "s3cretpass", "", "", domain.RoleUser)
	require.NoError(t, err)

	enroll, err := mfa.Enroll(ctx, profile.ID)
	require.NoError(t, err)
	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, mfa.Activate(ctx, profile.ID, code))

	_, challenge, err := f.auth.Login(ctx, "lock@example.com", "s3cretpass")
	require.NoError(t, err)
	require.NotNil(t, challenge)

	for range MaxMFAAttempts {
		_, err = f.auth.CompleteMFA(ctx, challenge.MFAToken, "000000")
		require.ErrorIs(t, err, ErrInvalidGrant)
	}

	_, err = f.auth.CompleteMFA(ctx, challenge.MFAToken, "000000")
	require.ErrorIs(t, err, ErrTooManyAttempts)
}
