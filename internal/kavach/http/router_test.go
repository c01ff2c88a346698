package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/realtime"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/internal/kavach/store/drivers/badgerdb"
	"github.com/sevasetu/kavach/internal/kavach/store/drivers/sqlite"
	"github.com/sevasetu/kavach/pkg/jwtx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

type apiFixture struct {
	server *httptest.Server
	auth   *service.AuthService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
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
	verifier := jwtx.NewVerifier(keys, "kavach-test")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := realtime.NewHub(logger)
	go hub.Run()
	t.Cleanup(hub.Stop)

	profiles := service.NewProfileService(st.Profiles(), fallback)
	auth := &service.AuthService{
		Store:      st,
		Profiles:   profiles,
		Signer:     signer,
		Issuer:     "kavach-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}

	router := NewRouter(keys, verifier, "test", st, logger)
	router.AuthService = auth
	router.MFAService = &service.MFAService{Store: st, Issuer: "kavach-test"}
	router.ProfileService = profiles
	router.LocationService = &service.LocationService{Store: st, Events: hub}
	router.AlertService = &service.AlertService{Store: st, Events: hub}
	router.SOSService = &service.SOSService{Store: st, Events: hub}
	router.HealthUnitService = &service.HealthUnitService{Store: st, Events: hub}
	router.CameraService = &service.CameraService{Store: st, Events: hub}
	router.LostFoundService = &service.LostFoundService{Store: st, Events: hub}
	router.VolunteerService = &service.VolunteerService{Store: st, Events: hub}
	router.FoodPointService = &service.FoodPointService{Store: st, Events: hub}
	router.HelpRequestService = &service.HelpRequestService{Store: st, Events: hub}
	router.RouteService = &service.RouteService{Store: st, Events: hub}
	router.AnalyticsService = &service.AnalyticsService{Store: st}
	router.Events = hub
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &apiFixture{server: server, auth: auth}
}

// token registers an account with the given role and returns its access
// token, going through the service to sidestep the login rate limit.
func (f *apiFixture) token(t *testing.T, email, role string) string {
	t.Helper()
	ctx := context.Background()

	_, err := f.auth.Register(ctx, email, "s3cretpass", "", "", role)
	require.NoError(t, err)
	pair, _, err := f.auth.Login(ctx, email, "s3cretpass")
	require.NoError(t, err)
	return pair.AccessToken
}

func (f *apiFixture) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, f.server.URL+path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.request(t, http.MethodGet, "/v1/locations", "", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.request(t, http.MethodGet, "/v1/profile", "", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRouteNamesRolesInDenial(t *testing.T) {
	f := newAPIFixture(t)
	userToken := f.token(t, "pilgrim@example.com", domain.RoleUser)

	resp := f.request(t, http.MethodPost, "/v1/locations", userToken, sdk.LocationRequest{
		Name: "Ghat 1", Capacity: 100,
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	require.Equal(t, "access_denied", body["error"])
	require.Equal(t, domain.RoleUser, body["current_role"])
	require.Equal(t, domain.RoleAdmin, body["required_role"])
}

func TestLocationLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	adminToken := f.token(t, "ops@example.com", domain.RoleAdmin)
	userToken := f.token(t, "walker@example.com", domain.RoleUser)

	resp := f.request(t, http.MethodPost, "/v1/locations", adminToken, sdk.LocationRequest{
		Name: "Sangam Ghat", Capacity: 1000, CurrentCount: 850,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[sdk.Location](t, resp)
	require.Equal(t, "critical", created.Status)
	require.Equal(t, 85.0, created.DensityPercent)

	// Regular users can read the derived view.
	resp = f.request(t, http.MethodGet, "/v1/locations/"+created.ID, userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[sdk.Location](t, resp)
	require.Equal(t, "critical", got.Status)

	// Out-of-range occupancy is rejected at the write.
	resp = f.request(t, http.MethodPatch, "/v1/locations/"+created.ID+"/count", adminToken,
		sdk.LocationCountRequest{CurrentCount: 1500})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	require.Equal(t, "invalid_occupancy", body["error"])

	resp = f.request(t, http.MethodPatch, "/v1/locations/"+created.ID+"/count", adminToken,
		sdk.LocationCountRequest{CurrentCount: 300})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[sdk.Location](t, resp)
	require.Equal(t, "safe", updated.Status)
}

func TestSOSAnyUserCanRaiseOnlyAdminCanWork(t *testing.T) {
	f := newAPIFixture(t)
	adminToken := f.token(t, "control@example.com", domain.RoleAdmin)
	userToken := f.token(t, "lost@example.com", domain.RoleUser)

	lat, lng := 25.4358, 81.8463
	resp := f.request(t, http.MethodPost, "/v1/sos", userToken, sdk.SOSRequest{
		Latitude: &lat, Longitude: &lng,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	alert := decodeBody[sdk.SOSAlert](t, resp)
	require.Equal(t, "active", alert.Status)
	require.Equal(t, "critical", alert.Priority)
	require.Equal(t, "25.4358, 81.8463", alert.Location)

	// The queue itself is operator-only.
	resp = f.request(t, http.MethodGet, "/v1/sos", userToken, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.request(t, http.MethodGet, "/v1/sos?active=true", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	queue := decodeBody[[]sdk.SOSAlert](t, resp)
	require.Len(t, queue, 1)

	resp = f.request(t, http.MethodPatch, "/v1/sos/"+alert.ID+"/status", adminToken,
		sdk.StatusUpdateRequest{Status: "responded"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	worked := decodeBody[sdk.SOSAlert](t, resp)
	require.Equal(t, "responded", worked.Status)
}

func TestDashboardFollowsRole(t *testing.T) {
	f := newAPIFixture(t)
	adminToken := f.token(t, "admin@example.com", domain.RoleAdmin)
	userToken := f.token(t, "user@example.com", domain.RoleUser)

	resp := f.request(t, http.MethodGet, "/v1/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	admin := decodeBody[sdk.DashboardResponse](t, resp)
	require.Equal(t, "/admin-dashboard", admin.Redirect)

	resp = f.request(t, http.MethodGet, "/v1/dashboard", userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeBody[sdk.DashboardResponse](t, resp)
	require.Equal(t, "/user-dashboard", user.Redirect)
}

func TestSystemEndpointsArePublic(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.request(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	live := decodeBody[sdk.HealthResponse](t, resp)
	require.Equal(t, "ok", live.Status)

	resp = f.request(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ready := decodeBody[sdk.HealthResponse](t, resp)
	require.Equal(t, "ok", ready.Checks.Database)

	resp = f.request(t, http.MethodGet, "/.well-known/jwks.json", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var jwks struct {
		Keys []map[string]any `json:"keys"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&jwks))
	resp.Body.Close()
	require.Len(t, jwks.Keys, 1)
}

func TestHelpRequestPriorityDerivedOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	adminToken := f.token(t, "desk@example.com", domain.RoleAdmin)
	userToken := f.token(t, "pilgrim2@example.com", domain.RoleUser)

	resp := f.request(t, http.MethodPost, "/v1/help-requests", userToken, sdk.HelpRequestRequest{
		Type: "medical", Description: "chest pain", Location: "Gate 4",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[domain.HelpRequest](t, resp)
	require.Equal(t, domain.HelpPriorityHigh, created.Priority)
	require.Equal(t, domain.HelpPending, created.Status)

	resp = f.request(t, http.MethodPatch, "/v1/help-requests/"+created.ID+"/status", adminToken,
		sdk.StatusUpdateRequest{Status: domain.HelpAssigned, AssignedTo: "medic-7"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assigned := decodeBody[domain.HelpRequest](t, resp)
	require.Equal(t, domain.HelpAssigned, assigned.Status)
	require.Equal(t, "medic-7", assigned.AssignedTo)
}
