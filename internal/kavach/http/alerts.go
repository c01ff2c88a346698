package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// AlertsHandler serves operator-raised emergency alerts.
type AlertsHandler struct {
	Alerts *service.AlertService
}

// HandleCreate handles POST /v1/alerts.
func (h *AlertsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req sdk.AlertRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	a, err := h.Alerts.Create(r.Context(), domain.Alert{
		Type:        req.Type,
		Location:    req.Location,
		Severity:    req.Severity,
		Description: req.Description,
		CreatedBy:   httpx.UserIDFromContext(r.Context()),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, a)
}

// HandleUpdate handles PUT /v1/alerts/{id}.
func (h *AlertsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req sdk.AlertRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	a, err := h.Alerts.Update(r.Context(), domain.Alert{
		ID:          r.PathValue("id"),
		Type:        req.Type,
		Location:    req.Location,
		Severity:    req.Severity,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, a)
}

// HandleResolve handles POST /v1/alerts/{id}/resolve.
func (h *AlertsHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	if err := h.Alerts.Resolve(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "alert resolved"})
}

// HandleList handles GET /v1/alerts. ?active=true narrows to unresolved.
func (h *AlertsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	alerts, err := h.Alerts.List(r.Context(), activeOnly)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, alerts)
}

// HandleGet handles GET /v1/alerts/{id}.
func (h *AlertsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.Alerts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, a)
}

// HandleDelete handles DELETE /v1/alerts/{id}.
func (h *AlertsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Alerts.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "alert deleted"})
}
