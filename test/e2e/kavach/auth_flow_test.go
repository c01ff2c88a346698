package kavach_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/sevasetu/kavach/pkg/sdk"
)

// TestRegisterLoginDashboard walks the happy path for both roles: register,
// login, land on the role-matched dashboard.
func TestRegisterLoginDashboard(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)

	admin := registerAndLogin(t, client, "ops@example.com", "admin")
	user := registerAndLogin(t, client, "pilgrim@example.com", "user")

	adminDash, err := admin.Dashboard(t.Context())
	require.NoError(t, err)
	require.Equal(t, "admin", adminDash.Role)
	require.Equal(t, "/admin-dashboard", adminDash.Redirect)

	userDash, err := user.Dashboard(t.Context())
	require.NoError(t, err)
	require.Equal(t, "user", userDash.Role)
	require.Equal(t, "/user-dashboard", userDash.Redirect)

	profile, err := user.Profile(t.Context())
	require.NoError(t, err)
	require.Equal(t, "pilgrim@example.com", profile.Email)
	require.Equal(t, "user", profile.Role)
}

// TestRegisterRejectsDuplicateEmail verifies the conflict surfaces as a
// stable error code rather than a raw database error.
func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)
	registerAndLogin(t, client, "taken@example.com", "user")

	_, err := client.Register(t.Context(), sdk.RegisterRequest{
		Email:    "taken@example.com",
		Password: testPassword,
	})
	assertAPIError(t, err, http.StatusConflict, "email_taken")
}

// TestLoginRejectsBadPassword verifies credential failures come back uniform.
func TestLoginRejectsBadPassword(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)
	registerAndLogin(t, client, "careful@example.com", "user")

	_, err := client.Login(t.Context(), "careful@example.com", "wrong-password")
	assertAPIError(t, err, http.StatusUnauthorized, "invalid_grant")

	_, err = client.Login(t.Context(), "nobody@example.com", testPassword)
	assertAPIError(t, err, http.StatusUnauthorized, "invalid_grant")
}

// TestRefreshRotatesAndLogoutRevokes exercises the refresh token lifecycle
// end to end: rotation invalidates the old token, logout kills the chain.
func TestRefreshRotatesAndLogoutRevokes(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)
	session := registerAndLogin(t, client, "rotator@example.com", "user")

	oldRefresh := session.RefreshToken()

	rotated, err := client.Refresh(t.Context(), oldRefresh)
	require.NoError(t, err)
	assertTokenResponse(t, rotated)
	require.NotEqual(t, oldRefresh, rotated.RefreshToken, "Refresh should rotate the token")
	session.SetTokens(rotated)

	// The spent token is dead.
	_, err = client.Refresh(t.Context(), oldRefresh)
	assertAPIError(t, err, http.StatusUnauthorized, "invalid_grant")

	// Logout revokes the live one; revoking twice still succeeds.
	require.NoError(t, client.Logout(t.Context(), rotated.RefreshToken))
	require.NoError(t, client.Logout(t.Context(), rotated.RefreshToken))

	_, err = client.Refresh(t.Context(), rotated.RefreshToken)
	assertAPIError(t, err, http.StatusUnauthorized, "invalid_grant")
}

// TestMFAEnrollAndLogin enrolls TOTP, then proves login becomes a two-step
// flow that still lands on a valid session.
func TestMFAEnrollAndLogin(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)
	session := registerAndLogin(t, client, "guarded@example.com", "admin")

	enroll, err := session.EnrollMFA(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, enroll.Secret)
	require.NotEmpty(t, enroll.QRCode)

	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, session.ActivateMFA(t.Context(), code))

	// Password alone now yields a challenge, not tokens.
	login, err := client.Login(t.Context(), "guarded@example.com", testPassword)
	require.NoError(t, err)
	require.Nil(t, login.Tokens)
	require.NotNil(t, login.Challenge)
	require.Contains(t, login.Challenge.Methods, "totp")

	code, err = totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	tokens, err := client.CompleteMFA(t.Context(), login.Challenge.MFAToken, code)
	require.NoError(t, err)
	assertTokenResponse(t, tokens)

	// The completed session keeps its admin role.
	dash, err := client.Session(tokens).Dashboard(t.Context())
	require.NoError(t, err)
	require.Equal(t, "/admin-dashboard", dash.Redirect)
}
