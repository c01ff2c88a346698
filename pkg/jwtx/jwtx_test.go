package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) (*Signer, *KeySet) {
	t.Helper()

	signer, err := NewSigner()
	require.NoError(t, err)
	require.NoError(t, signer.Validate())

	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	return signer, keys
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, keys := newTestSigner(t)
	verifier := NewVerifier(keys, "kavach")

	claims := NewAccessClaims(
		"user-1", "sid-1", "admin",
		[]string{"pwd"},
		DefaultAccessTokenTTL,
		"kavach", "admin@example.com", "Admin",
		time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "sid-1", got.SID)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, []string{"pwd"}, got.AMR)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, keys := newTestSigner(t)
	verifier := NewVerifier(keys, "kavach")

	claims := NewAccessClaims(
		"user-1", "sid-1", "user", nil,
		DefaultAccessTokenTTL, "someone-else", "", "",
		time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer, keys := newTestSigner(t)
	verifier := NewVerifier(keys, "kavach")

	claims := NewAccessClaims(
		"user-1", "sid-1", "user", nil,
		-time.Minute, "kavach", "", "",
		time.Now().UTC().Add(-time.Hour),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	signer, _ := newTestSigner(t)
	_, otherKeys := newTestSigner(t)
	verifier := NewVerifier(otherKeys, "kavach")

	claims := NewAccessClaims(
		"user-1", "sid-1", "user", nil,
		DefaultAccessTokenTTL, "kavach", "", "",
		time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestKeySetReadiness(t *testing.T) {
	t.Parallel()

	keys := NewKeySet()
	require.False(t, keys.IsReady())

	signer, err := NewSigner()
	require.NoError(t, err)
	require.NoError(t, keys.AddSigner(signer))

	require.True(t, keys.IsReady())
	require.Len(t, keys.PublicJWKS().Keys, 1)

	_, err = keys.Get("nope")
	require.ErrorIs(t, err, ErrNoKey)
}
