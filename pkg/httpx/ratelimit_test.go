package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimitAllowsWithinBudget(t *testing.T) {
	t.Parallel()

	limit := RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}
	handler := RateLimitByIP(limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/locations", nil)
		req.RemoteAddr = "10.0.0.1:50000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}
}

func TestRateLimitBlocksAboveBudget(t *testing.T) {
	t.Parallel()

	limit := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	handler := RateLimitByIP(limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.2:50000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:50000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitKeysAreIndependent(t *testing.T) {
	t.Parallel()

	limit := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	handler := RateLimitByIP(limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.3:50000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	// Same IP again is blocked.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different IP still has its own budget.
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.4:50000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestIPKeyExtractorHonoursForwardingHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	require.Equal(t, "127.0.0.1", IPKeyExtractor(req))

	req.Header.Set("X-Real-IP", "203.0.113.7")
	require.Equal(t, "203.0.113.7", IPKeyExtractor(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.9, 203.0.113.7")
	require.Equal(t, "198.51.100.9", IPKeyExtractor(req))
}

func TestParseRateLimitFromEnv(t *testing.T) {
	t.Setenv("RATELIMIT_TEST_REQUESTS", "42")
	t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
	t.Setenv("RATELIMIT_TEST_BURST", "7")

	config := ParseRateLimitFromEnv("TEST", RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})
	require.Equal(t, 42, config.RequestsPerWindow)
	require.Equal(t, 30*time.Second, config.Window)
	require.Equal(t, 7, config.Burst)
}

func TestParseRateLimitFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("RATELIMIT_BAD_REQUESTS", "not-a-number")
	t.Setenv("RATELIMIT_BAD_WINDOW_SEC", "-5")

	defaults := RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}
	config := ParseRateLimitFromEnv("BAD", defaults)
	require.Equal(t, defaults, config)
}
