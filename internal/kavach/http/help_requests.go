package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// HelpRequestsHandler serves pilgrim assistance requests.
type HelpRequestsHandler struct {
	HelpRequests *service.HelpRequestService
}

// HandleCreate handles POST /v1/help-requests. Priority is derived from the
// request type server-side; clients cannot set it.
func (h *HelpRequestsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		sdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req sdk.HelpRequestRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	created, err := h.HelpRequests.Create(r.Context(), domain.HelpRequest{
		UserID:      userID,
		Type:        req.Type,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdateStatus handles PATCH /v1/help-requests/{id}/status.
func (h *HelpRequestsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req sdk.StatusUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	updated, err := h.HelpRequests.UpdateStatus(r.Context(), r.PathValue("id"), req.Status, req.AssignedTo)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *HelpRequestsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	hr, err := h.HelpRequests.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hr)
}

func (h *HelpRequestsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.HelpRequests.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, requests)
}

func (h *HelpRequestsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.HelpRequests.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "help request deleted"})
}
