package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/jwtx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// SOSHandler serves pilgrim distress signals.
type SOSHandler struct {
	SOS      *service.SOSService
	Profiles *service.ProfileService
}

// HandleRaise handles POST /v1/sos. The reporter identity comes from the
// access token, never the body.
func (h *SOSHandler) HandleRaise(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		sdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req sdk.SOSRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	email := ""
	if claims, ok := ctx.Value(httpx.CtxKeyClaims).(*jwtx.Claims); ok {
		email = claims.Email
	}
	profile := h.Profiles.Resolve(ctx, userID, email)

	alert, err := h.SOS.Raise(ctx, service.RaiseRequest{
		UserID:       userID,
		UserName:     profile.DisplayName,
		Phone:        profile.PhoneNumber,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		LocationText: req.Location,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, alert)
}

// HandleUpdateStatus handles PATCH /v1/sos/{id}/status.
func (h *SOSHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req sdk.StatusUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	alert, err := h.SOS.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, alert)
}

// HandleList handles GET /v1/sos. ?active=true narrows to open alerts.
func (h *SOSHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	alerts, err := h.SOS.List(r.Context(), activeOnly)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, alerts)
}

// HandleGet handles GET /v1/sos/{id}.
func (h *SOSHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	alert, err := h.SOS.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, alert)
}
