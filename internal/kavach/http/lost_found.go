package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/jwtx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// LostFoundHandler serves missing person and lost item reports.
type LostFoundHandler struct {
	LostFound *service.LostFoundService
	Profiles  *service.ProfileService
}

// HandleReport handles POST /v1/lost-found. The reporter identity comes from
// the access token.
func (h *LostFoundHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		sdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req sdk.LostFoundRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	email := ""
	if claims, ok := ctx.Value(httpx.CtxKeyClaims).(*jwtx.Claims); ok {
		email = claims.Email
	}
	profile := h.Profiles.Resolve(ctx, userID, email)

	report, err := h.LostFound.Report(ctx, domain.LostFoundReport{
		Type:             req.Type,
		Title:            req.Title,
		Description:      req.Description,
		LastSeenLocation: req.LastSeenLocation,
		Category:         req.Category,
		ReporterID:       userID,
		ReporterName:     profile.DisplayName,
		ReporterContact:  req.ReporterContact,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, report)
}

// HandleUpdateStatus handles PATCH /v1/lost-found/{id}/status. Gated to the
// reporter or an admin inside the service.
func (h *LostFoundHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sdk.StatusUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	report, err := h.LostFound.UpdateStatus(ctx, r.PathValue("id"), req.Status,
		httpx.UserIDFromContext(ctx), httpx.RoleFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report)
}

func (h *LostFoundHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	report, err := h.LostFound.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report)
}

func (h *LostFoundHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reports, err := h.LostFound.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, reports)
}

func (h *LostFoundHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.LostFound.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "report deleted"})
}
