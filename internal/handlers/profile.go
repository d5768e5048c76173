package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
)

// ProfileHandler serves the single about/bio document.
type ProfileHandler struct {
	service  *services.ProfileService
	activity *services.ActivityService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service *services.ProfileService, activity *services.ActivityService) *ProfileHandler {
	return &ProfileHandler{service: service, activity: activity}
}

// Get returns the profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Get(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Save creates or replaces the profile (admin)
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if profile.Name == "" {
		pkghttp.WriteBadRequest(w, "Name is required")
		return
	}

	saved, err := h.service.Save(r.Context(), profile)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionUpdate,
		EntityType: models.ActivityEntityProfile,
		EntityID:   saved.ID,
		EntityName: saved.Name,
		UserEmail:  actorEmail(r),
		Details:    "Updated profile",
	})

	writeJSON(w, http.StatusOK, saved)
}
