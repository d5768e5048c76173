package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
)

// SkillHandler handles the skills board endpoints.
type SkillHandler struct {
	service  *services.SkillService
	activity *services.ActivityService
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(service *services.SkillService, activity *services.ActivityService) *SkillHandler {
	return &SkillHandler{service: service, activity: activity}
}

// List returns skills, optionally filtered by category or featured flag
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		skills []models.Skill
		err    error
	)
	switch {
	case r.URL.Query().Get("featured") == "true":
		skills, err = h.service.GetFeatured(r.Context())
	case r.URL.Query().Get("category") != "":
		skills, err = h.service.GetByCategory(r.Context(), r.URL.Query().Get("category"))
	default:
		skills, err = h.service.GetAll(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skills)
}

// Create stores a new skill (admin)
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if skill.Name == "" {
		pkghttp.WriteBadRequest(w, "Name is required")
		return
	}

	created, err := h.service.Create(r.Context(), skill)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionCreate,
		EntityType: models.ActivityEntitySkill,
		EntityID:   created.ID,
		EntityName: created.Name,
		UserEmail:  actorEmail(r),
		Details:    "Created skill",
	})

	writeJSON(w, http.StatusCreated, created)
}

// Update replaces a skill (admin)
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), skill)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionUpdate,
		EntityType: models.ActivityEntitySkill,
		EntityID:   updated.ID,
		EntityName: updated.Name,
		UserEmail:  actorEmail(r),
		Details:    "Updated skill",
	})

	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a skill (admin)
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	skill, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionDelete,
		EntityType: models.ActivityEntitySkill,
		EntityID:   id,
		EntityName: skill.Name,
		UserEmail:  actorEmail(r),
		Details:    "Deleted skill",
	})

	w.WriteHeader(http.StatusNoContent)
}

// Reorder rewrites the skill display order (admin)
func (h *SkillHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.service.Reorder(r.Context(), req.IDs); err != nil {
		writeServiceError(w, err)
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionUpdate,
		EntityType: models.ActivityEntitySkill,
		UserEmail:  actorEmail(r),
		Details:    "Reordered skills",
	})

	w.WriteHeader(http.StatusNoContent)
}
