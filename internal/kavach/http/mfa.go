package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// MFAHandler serves TOTP enrollment for authenticated users.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll handles POST /v1/auth/mfa/enroll.
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		sdk.ErrInvalidToken.WriteError(w)
		return
	}

	enroll, err := h.MFAService.Enroll(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, enroll)
}

// HandleActivate handles POST /v1/auth/mfa/activate.
func (h *MFAHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		sdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req sdk.MFAActivateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Code == "" {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.MFAService.Activate(r.Context(), userID, req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "MFA enabled"})
}

// HandleDisable handles DELETE /v1/auth/mfa.
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		sdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.MFAService.Disable(r.Context(), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "MFA disabled"})
}
