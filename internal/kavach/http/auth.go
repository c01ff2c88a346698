package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/sdk"
	"github.com/sevasetu/kavach/pkg/slogx"
)

// AuthHandler serves registration, login, token refresh and logout.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /v1/auth/register.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req sdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	profile, err := h.AuthService.Register(r.Context(), req.Email, req.Password, req.DisplayName, req.PhoneNumber, req.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, profile)
}

// HandleLogin handles POST /v1/auth/login. The response is either a token
// pair or an MFA challenge.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req sdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, challenge, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if challenge != nil {
		httpx.WriteJSON(w, http.StatusOK, challenge)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pair)
}

// HandleMFA handles POST /v1/auth/mfa, completing a login challenge.
func (h *AuthHandler) HandleMFA(w http.ResponseWriter, r *http.Request) {
	var req sdk.MFACompleteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.MFAToken == "" || req.Code == "" {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.CompleteMFA(r.Context(), req.MFAToken, req.Code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pair)
}

// HandleRefresh handles POST /v1/auth/refresh.
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req sdk.RefreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.RefreshToken == "" {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pair)
}

// HandleLogout handles POST /v1/auth/logout. Always succeeds for dead or
// unknown tokens; there is nothing useful to tell the caller.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req sdk.LogoutRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.AuthService.Logout(r.Context(), req.RefreshToken); err != nil {
		slogx.FromContext(r.Context()).Error("logout failed", "err", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "logged out"})
}
