package kavach_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sevasetu/kavach/pkg/sdk"
)

// TestLivezEndpoint verifies the liveness check responds without auth.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)

	health, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
}

// TestReadyzEndpoint verifies the readiness check reports its dependencies.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)

	health, err := client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}

// TestJWKSEndpoint verifies verification keys are published before any login.
func TestJWKSEndpoint(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)

	jwks, err := client.JWKS(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, jwks.Keys, "JWKS should contain at least one key")

	t.Logf("JWKS endpoint returned %d key(s)", len(jwks.Keys))
}
