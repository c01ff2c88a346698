package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/jwtx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// FoodPointsHandler serves community food donation posts.
type FoodPointsHandler struct {
	FoodPoints *service.FoodPointService
	Profiles   *service.ProfileService
}

// HandlePost handles POST /v1/food-points. The donor identity comes from the
// access token.
func (h *FoodPointsHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		sdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req sdk.FoodPointRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	email := ""
	if claims, ok := ctx.Value(httpx.CtxKeyClaims).(*jwtx.Claims); ok {
		email = claims.Email
	}
	profile := h.Profiles.Resolve(ctx, userID, email)

	point, err := h.FoodPoints.Post(ctx, domain.FoodPoint{
		DonorID:       userID,
		DonorName:     profile.DisplayName,
		DonorContact:  req.DonorContact,
		FoodType:      req.FoodType,
		Description:   req.Description,
		Location:      req.Location,
		Portions:      req.Portions,
		TimeAvailable: req.TimeAvailable,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, point)
}

// HandleUpdateStatus handles PATCH /v1/food-points/{id}/status. Gated to the
// donor or an admin inside the service.
func (h *FoodPointsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sdk.StatusUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	point, err := h.FoodPoints.UpdateStatus(ctx, r.PathValue("id"), req.Status,
		httpx.UserIDFromContext(ctx), httpx.RoleFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, point)
}

func (h *FoodPointsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	point, err := h.FoodPoints.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, point)
}

func (h *FoodPointsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	points, err := h.FoodPoints.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, points)
}

func (h *FoodPointsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.FoodPoints.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "food point deleted"})
}
