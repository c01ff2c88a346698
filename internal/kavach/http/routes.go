package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// RoutesHandler serves safe walking routes with live crowd levels.
type RoutesHandler struct {
	Routes *service.RouteService
}

func (h *RoutesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req sdk.SafeRouteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	route, err := h.Routes.Create(r.Context(), safeRouteFromRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, route)
}

func (h *RoutesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req sdk.SafeRouteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	route := safeRouteFromRequest(req)
	route.ID = r.PathValue("id")

	updated, err := h.Routes.Update(r.Context(), route)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *RoutesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	route, err := h.Routes.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, route)
}

func (h *RoutesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Routes.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, routes)
}

func (h *RoutesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Routes.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "route deleted"})
}

func safeRouteFromRequest(req sdk.SafeRouteRequest) domain.SafeRoute {
	return domain.SafeRoute{
		From:          req.From,
		To:            req.To,
		Distance:      req.Distance,
		EstimatedTime: req.EstimatedTime,
		Accessibility: req.Accessibility,
		Waypoints:     req.Waypoints,
		LocationIDs:   req.LocationIDs,
	}
}
