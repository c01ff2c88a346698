package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// HealthUnitsHandler serves the medical post registry.
type HealthUnitsHandler struct {
	HealthUnits *service.HealthUnitService
}

func (h *HealthUnitsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req sdk.HealthUnitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	unit, err := h.HealthUnits.Create(r.Context(), healthUnitFromRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, unit)
}

func (h *HealthUnitsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req sdk.HealthUnitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	unit := healthUnitFromRequest(req)
	unit.ID = r.PathValue("id")

	updated, err := h.HealthUnits.Update(r.Context(), unit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *HealthUnitsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req sdk.StatusUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	updated, err := h.HealthUnits.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *HealthUnitsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	unit, err := h.HealthUnits.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, unit)
}

func (h *HealthUnitsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	units, err := h.HealthUnits.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, units)
}

func (h *HealthUnitsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.HealthUnits.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "health unit deleted"})
}

func healthUnitFromRequest(req sdk.HealthUnitRequest) domain.HealthUnit {
	return domain.HealthUnit{
		Name:       req.Name,
		Location:   req.Location,
		StaffCount: req.StaffCount,
		Status:     req.Status,
		Equipment:  req.Equipment,
		Contact:    req.Contact,
	}
}
