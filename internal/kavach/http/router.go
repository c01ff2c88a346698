// Package http wires the REST surface of the crowd-safety API: the auth
// flow, the resource registries and the system endpoints.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/realtime"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/jwtx"
	"github.com/sevasetu/kavach/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService        *service.AuthService
	MFAService         *service.MFAService
	ProfileService     *service.ProfileService
	LocationService    *service.LocationService
	AlertService       *service.AlertService
	SOSService         *service.SOSService
	HealthUnitService  *service.HealthUnitService
	CameraService      *service.CameraService
	LostFoundService   *service.LostFoundService
	VolunteerService   *service.VolunteerService
	FoodPointService   *service.FoodPointService
	HelpRequestService *service.HelpRequestService
	RouteService       *service.RouteService
	AnalyticsService   *service.AnalyticsService
	Events             *realtime.Hub
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerLocations()
	r.registerAlerts()
	r.registerSOS()
	r.registerHealthUnits()
	r.registerCameras()
	r.registerLostFound()
	r.registerVolunteers()
	r.registerFoodPoints()
	r.registerHelpRequests()
	r.registerRoutes()
	r.registerAnalytics()
	r.registerEvents()
	r.registerSystem()
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed gates a route on a valid access token.
func (r *Router) authed(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

// adminOnly gates a route on the admin role. The 403 names both roles so the
// client can render its access-denied view.
func (r *Router) adminOnly(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(domain.RoleAdmin),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	auth := &AuthHandler{AuthService: r.AuthService}
	mfa := &MFAHandler{MFAService: r.MFAService}

	// Credential endpoints get the strict limit to slow brute force.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(auth.HandleRegister), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(auth.HandleLogin), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /v1/auth/mfa",
		httpx.Chain(http.HandlerFunc(auth.HandleMFA), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(http.HandlerFunc(auth.HandleRefresh), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(auth.HandleLogout), httpx.RateLimitByIP(httpx.ModerateLimit)))

	r.Mux.Handle("POST /v1/auth/mfa/enroll", r.authed(mfa.HandleEnroll, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/auth/mfa/activate", r.authed(mfa.HandleActivate, httpx.StrictLimit))
	r.Mux.Handle("DELETE /v1/auth/mfa", r.authed(mfa.HandleDisable, httpx.ModerateLimit))
}

func (r *Router) registerProfile() {
	profile := &ProfileHandler{Profiles: r.ProfileService}
	dashboard := &DashboardHandler{}

	r.Mux.Handle("GET /v1/profile", r.authed(profile.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/dashboard", r.authed(dashboard.HandleGet, httpx.LenientLimit))
}

func (r *Router) registerLocations() {
	h := &LocationsHandler{Locations: r.LocationService}

	r.Mux.Handle("POST /v1/locations", r.adminOnly(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/locations/{id}", r.adminOnly(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/locations/{id}/count", r.adminOnly(h.HandleUpdateCount, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/locations/{id}", r.adminOnly(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/locations", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/locations/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
}

func (r *Router) registerAlerts() {
	h := &AlertsHandler{Alerts: r.AlertService}

	r.Mux.Handle("POST /v1/alerts", r.adminOnly(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/alerts/{id}", r.adminOnly(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/alerts/{id}/resolve", r.adminOnly(h.HandleResolve, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/alerts/{id}", r.adminOnly(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/alerts", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/alerts/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
}

func (r *Router) registerSOS() {
	h := &SOSHandler{SOS: r.SOSService, Profiles: r.ProfileService}

	// Any pilgrim can raise an SOS; only operators work the queue.
	r.Mux.Handle("POST /v1/sos", r.authed(h.HandleRaise, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/sos/{id}/status", r.adminOnly(h.HandleUpdateStatus, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/sos", r.adminOnly(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/sos/{id}", r.adminOnly(h.HandleGet, httpx.LenientLimit))
}

func (r *Router) registerHealthUnits() {
	h := &HealthUnitsHandler{HealthUnits: r.HealthUnitService}

	r.Mux.Handle("POST /v1/health-units", r.adminOnly(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/health-units/{id}", r.adminOnly(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/health-units/{id}/status", r.adminOnly(h.HandleUpdateStatus, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/health-units/{id}", r.adminOnly(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/health-units", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/health-units/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
}

func (r *Router) registerCameras() {
	h := &CamerasHandler{Cameras: r.CameraService}

	// The camera registry is operator-only in both directions.
	r.Mux.Handle("POST /v1/cameras", r.adminOnly(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/cameras/{id}", r.adminOnly(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/cameras/{id}/status", r.adminOnly(h.HandleUpdateStatus, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/cameras/{id}", r.adminOnly(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/cameras", r.adminOnly(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/cameras/{id}", r.adminOnly(h.HandleGet, httpx.LenientLimit))
}

func (r *Router) registerLostFound() {
	h := &LostFoundHandler{LostFound: r.LostFoundService, Profiles: r.ProfileService}

	r.Mux.Handle("POST /v1/lost-found", r.authed(h.HandleReport, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/lost-found/{id}/status", r.authed(h.HandleUpdateStatus, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/lost-found", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/lost-found/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/lost-found/{id}", r.adminOnly(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerVolunteers() {
	h := &VolunteersHandler{Volunteers: r.VolunteerService}

	r.Mux.Handle("POST /v1/volunteers", r.authed(h.HandleRegister, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/volunteers/{id}/availability", r.authed(h.HandleUpdateAvailability, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/volunteers", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/volunteers/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/volunteers/{id}", r.adminOnly(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerFoodPoints() {
	h := &FoodPointsHandler{FoodPoints: r.FoodPointService, Profiles: r.ProfileService}

	r.Mux.Handle("POST /v1/food-points", r.authed(h.HandlePost, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/food-points/{id}/status", r.authed(h.HandleUpdateStatus, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/food-points", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/food-points/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/food-points/{id}", r.adminOnly(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerHelpRequests() {
	h := &HelpRequestsHandler{HelpRequests: r.HelpRequestService}

	r.Mux.Handle("POST /v1/help-requests", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/help-requests/{id}/status", r.adminOnly(h.HandleUpdateStatus, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/help-requests", r.adminOnly(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/help-requests/{id}", r.adminOnly(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/help-requests/{id}", r.adminOnly(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerRoutes() {
	h := &RoutesHandler{Routes: r.RouteService}

	r.Mux.Handle("POST /v1/routes", r.adminOnly(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/routes/{id}", r.adminOnly(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/routes/{id}", r.adminOnly(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/routes", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/routes/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
}

func (r *Router) registerAnalytics() {
	h := &AnalyticsHandler{Analytics: r.AnalyticsService}

	r.Mux.Handle("GET /v1/analytics/summary", r.adminOnly(h.HandleSummary, httpx.LenientLimit))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{Hub: r.Events}

	r.Mux.Handle("GET /v1/events", r.authed(h.HandleConnect, httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /metrics",
		httpx.Chain(promhttp.Handler(), httpx.RateLimitByIP(httpx.LenientLimit)))
}
