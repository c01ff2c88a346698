package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
)

// AnalyticsHandler serves the admin analytics summary.
type AnalyticsHandler struct {
	Analytics *service.AnalyticsService
}

// HandleSummary handles GET /v1/analytics/summary. Everything is computed
// from live data on each call.
func (h *AnalyticsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.Summarize(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, summary)
}
