package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// CamerasHandler serves the surveillance camera registry.
type CamerasHandler struct {
	Cameras *service.CameraService
}

func (h *CamerasHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req sdk.CameraRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	cam, err := h.Cameras.Create(r.Context(), domain.Camera{
		Name:     req.Name,
		Location: req.Location,
		Zone:     req.Zone,
		Status:   req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, cam)
}

func (h *CamerasHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req sdk.CameraRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	cam, err := h.Cameras.Update(r.Context(), domain.Camera{
		ID:       r.PathValue("id"),
		Name:     req.Name,
		Location: req.Location,
		Zone:     req.Zone,
		Status:   req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cam)
}

func (h *CamerasHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req sdk.StatusUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	cam, err := h.Cameras.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cam)
}

func (h *CamerasHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	cam, err := h.Cameras.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cam)
}

func (h *CamerasHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	cams, err := h.Cameras.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cams)
}

func (h *CamerasHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Cameras.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "camera deleted"})
}
