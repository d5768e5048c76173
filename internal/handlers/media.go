package handlers

import (
	"net/http"

	"github.com/Ashish-04-codes/Portfolio/internal/media"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
)

// maxUploadSize caps image uploads at 10 MB
const maxUploadSize = 10 << 20

// MediaHandler handles admin image uploads.
type MediaHandler struct {
	uploader *media.CloudinaryUploader
	activity *services.ActivityService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(uploader *media.CloudinaryUploader, activity *services.ActivityService) *MediaHandler {
	return &MediaHandler{uploader: uploader, activity: activity}
}

// Upload accepts a multipart image and returns the hosted URL (admin)
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil || !h.uploader.Configured() {
		pkghttp.WriteError(w, http.StatusServiceUnavailable, "not_configured", "Image uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		pkghttp.WriteBadRequest(w, "Missing file field")
		return
	}
	defer file.Close()

	result, err := h.uploader.Upload(r.Context(), header.Filename, file)
	if err != nil {
		pkghttp.WriteInternalError(w, "Upload failed")
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionCreate,
		EntityType: models.ActivityEntityConfig,
		EntityID:   result.PublicID,
		EntityName: header.Filename,
		UserEmail:  actorEmail(r),
		Details:    "Uploaded image",
	})

	writeJSON(w, http.StatusCreated, result)
}
