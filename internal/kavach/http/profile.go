package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/jwtx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// ProfileHandler serves the resolved profile of the authenticated user.
type ProfileHandler struct {
	Profiles *service.ProfileService
}

// HandleGet handles GET /v1/profile. The response always comes from the
// resolution chain, never raw storage, so it can't fail or surface a bad
// role.
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		sdk.ErrInvalidToken.WriteError(w)
		return
	}

	email := ""
	if claims, ok := ctx.Value(httpx.CtxKeyClaims).(*jwtx.Claims); ok {
		email = claims.Email
	}

	profile := h.Profiles.Resolve(ctx, userID, email)
	httpx.WriteJSON(w, http.StatusOK, profile)
}

// DashboardHandler tells the client which dashboard this session lands on.
type DashboardHandler struct{}

// HandleGet handles GET /v1/dashboard.
func (h *DashboardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	role := httpx.RoleFromContext(r.Context())
	if role == "" {
		sdk.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.DashboardResponse{
		Role:     role,
		Redirect: domain.DashboardTarget(role),
	})
}
