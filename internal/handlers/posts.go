package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
)

// BlogPostHandler handles the dispatch/article endpoints.
type BlogPostHandler struct {
	service  *services.BlogPostService
	activity *services.ActivityService
}

// NewBlogPostHandler creates a new BlogPostHandler
func NewBlogPostHandler(service *services.BlogPostService, activity *services.ActivityService) *BlogPostHandler {
	return &BlogPostHandler{service: service, activity: activity}
}

// ListPublished returns published posts, newest first
func (h *BlogPostHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetPublished(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// Get returns a single published post
func (h *BlogPostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !post.IsPublished() {
		pkghttp.WriteNotFound(w, "Resource not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// ListAll returns every post including drafts (admin)
func (h *BlogPostHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetAny returns a single post regardless of publish state (admin)
func (h *BlogPostHandler) GetAny(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Create stores a new post (admin)
func (h *BlogPostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if post.Title == "" {
		pkghttp.WriteBadRequest(w, "Title is required")
		return
	}

	created, err := h.service.Create(r.Context(), post)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionCreate,
		EntityType: models.ActivityEntityBlog,
		EntityID:   created.ID,
		EntityName: created.Title,
		UserEmail:  actorEmail(r),
		Details:    "Created post",
	})

	writeJSON(w, http.StatusCreated, created)
}

// Update replaces a post (admin)
func (h *BlogPostHandler) Update(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), post)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionUpdate,
		EntityType: models.ActivityEntityBlog,
		EntityID:   updated.ID,
		EntityName: updated.Title,
		UserEmail:  actorEmail(r),
		Details:    "Updated post",
	})

	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a post (admin)
func (h *BlogPostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.service.GetByID(r.Context(), id)
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
		EntityType: models.ActivityEntityBlog,
		EntityID:   id,
		EntityName: post.Title,
		UserEmail:  actorEmail(r),
		Details:    "Deleted post",
	})

	w.WriteHeader(http.StatusNoContent)
}

// SetPublished publishes or unpublishes a post (admin)
func (h *BlogPostHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
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
	details := "Published post"
	if !req.Published {
		action = models.ActivityActionUnpublish
		details = "Unpublished post"
	}
	h.activity.Log(services.LogActivityParams{
		Action:     action,
		EntityType: models.ActivityEntityBlog,
		EntityID:   updated.ID,
		EntityName: updated.Title,
		UserEmail:  actorEmail(r),
		Details:    details,
	})

	writeJSON(w, http.StatusOK, updated)
}
