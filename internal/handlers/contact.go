package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit accepts a contact form submission and forwards it to the site
// owner.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var msg services.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := ValidateRequest(msg); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.service.Submit(r.Context(), msg); err != nil {
		if errors.Is(err, models.ErrBadRequest) {
			pkghttp.WriteBadRequest(w, "Name, email and message are required")
			return
		}
		pkghttp.WriteInternalError(w, "Unable to deliver message")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "Thanks for writing in. Your message has been delivered.",
	})
}
