package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/pkg/httpx"
	"github.com/sevasetu/kavach/pkg/sdk"
)

// VolunteersHandler serves the volunteer register.
type VolunteersHandler struct {
	Volunteers *service.VolunteerService
}

// HandleRegister handles POST /v1/volunteers. The volunteer record is owned
// by the authenticated user.
func (h *VolunteersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		sdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req sdk.VolunteerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	v, err := h.Volunteers.Register(r.Context(), domain.Volunteer{
		UserID:     userID,
		Name:       req.Name,
		Skills:     req.Skills,
		Languages:  req.Languages,
		Location:   req.Location,
		Contact:    req.Contact,
		BloodGroup: req.BloodGroup,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, v)
}

func (h *VolunteersHandler) HandleUpdateAvailability(w http.ResponseWriter, r *http.Request) {
	var req sdk.AvailabilityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		sdk.ErrInvalidRequest.WriteError(w)
		return
	}

	v, err := h.Volunteers.UpdateAvailability(r.Context(), r.PathValue("id"), req.Availability)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}

func (h *VolunteersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	v, err := h.Volunteers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}

// HandleList handles GET /v1/volunteers. ?skill=First+Aid narrows by skill.
func (h *VolunteersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	volunteers, err := h.Volunteers.List(r.Context(), r.URL.Query().Get("skill"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, volunteers)
}

func (h *VolunteersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Volunteers.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "volunteer removed"})
}
