package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// LocationsHandler serves the crowd zone registry.
type LocationsHandler struct {
	Locations *service.LocationService
}

// HandleCreate handles POST /v1/locations.
func (h *LocationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req sdk.LocationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	v, err := h.Locations.Create(r.Context(), locationFromRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, v)
}

// HandleUpdate handles PUT /v1/locations/{id}.
func (h *LocationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req sdk.LocationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	l := locationFromRequest(req)
	l.ID = r.PathValue("id")

	v, err := h.Locations.Update(r.Context(), l)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}

// HandleUpdateCount handles PATCH /v1/locations/{id}/count, the live
// occupancy feed.
func (h *LocationsHandler) HandleUpdateCount(w http.ResponseWriter, r *http.Request) {
	var req sdk.LocationCountRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	v, err := h.Locations.UpdateCount(r.Context(), r.PathValue("id"), req.CurrentCount)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}

// HandleGet handles GET /v1/locations/{id}.
func (h *LocationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	v, err := h.Locations.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}

// HandleList handles GET /v1/locations.
func (h *LocationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.Locations.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, views)
}

// HandleDelete handles DELETE /v1/locations/{id}.
func (h *LocationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Locations.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "location deleted"})
}

func locationFromRequest(req sdk.LocationRequest) domain.Location {
	return domain.Location{
		Name:         req.Name,
		Capacity:     req.Capacity,
		CurrentCount: req.CurrentCount,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
}
