package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
)

// ProjectHandler handles the portfolio project endpoints. Public routes
// see only published projects; admin routes see everything and every
// mutation lands in the activity trail.
type ProjectHandler struct {
	service  *services.ProjectService
	activity *services.ActivityService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(service *services.ProjectService, activity *services.ActivityService) *ProjectHandler {
	return &ProjectHandler{service: service, activity: activity}
}

// ListPublished returns published projects in display order
func (h *ProjectHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetPublished(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// ListFeatured returns published projects flagged for the front page
func (h *ProjectHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetFeatured(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get returns a single published project
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !project.IsPublished() {
		pkghttp.WriteNotFound(w, "Resource not found")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// ListAll returns every project including drafts (admin)
func (h *ProjectHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// GetAny returns a single project regardless of publish state (admin)
func (h *ProjectHandler) GetAny(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create stores a new project (admin)
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if project.Title == "" {
		pkghttp.WriteBadRequest(w, "Title is required")
		return
	}

	created, err := h.service.Create(r.Context(), project)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionCreate,
		EntityType: models.ActivityEntityProject,
		EntityID:   created.ID,
		EntityName: created.Title,
		UserEmail:  actorEmail(r),
		Details:    "Created project",
	})

	writeJSON(w, http.StatusCreated, created)
}

// Update replaces a project (admin)
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), project)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionUpdate,
		EntityType: models.ActivityEntityProject,
		EntityID:   updated.ID,
		EntityName: updated.Title,
		UserEmail:  actorEmail(r),
		Details:    "Updated project",
	})

	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a project (admin)
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.service.GetByID(r.Context(), id)
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
		EntityType: models.ActivityEntityProject,
		EntityID:   id,
		EntityName: project.Title,
		UserEmail:  actorEmail(r),
		Details:    "Deleted project",
	})

	w.WriteHeader(http.StatusNoContent)
}

// PublishRequest toggles the published state of a content item
type PublishRequest struct {
	Published bool `json:"published"`
}

// SetPublished publishes or unpublishes a project (admin)
func (h *ProjectHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.SetPublished(r.Context(), chi.URLParam(r, "id"), req.Published)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	action := models.ActivityActionPublish
	details := "Published project"
	if !req.Published {
		action = models.ActivityActionUnpublish
		details = "Unpublished project"
	}
	h.activity.Log(services.LogActivityParams{
		Action:     action,
		EntityType: models.ActivityEntityProject,
		EntityID:   updated.ID,
		EntityName: updated.Title,
		UserEmail:  actorEmail(r),
		Details:    details,
	})

	writeJSON(w, http.StatusOK, updated)
}

// ReorderRequest carries the new id ordering for a content collection
type ReorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// Reorder rewrites the project display order (admin)
func (h *ProjectHandler) Reorder(w http.ResponseWriter, r *http.Request) {
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
		EntityType: models.ActivityEntityProject,
		UserEmail:  actorEmail(r),
		Details:    "Reordered projects",
	})

	w.WriteHeader(http.StatusNoContent)
}
