package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
)

// SiteConfigHandler serves the site-wide settings document.
type SiteConfigHandler struct {
	service  *services.SiteConfigService
	activity *services.ActivityService
}

// NewSiteConfigHandler creates a new SiteConfigHandler
func NewSiteConfigHandler(service *services.SiteConfigService, activity *services.ActivityService) *SiteConfigHandler {
	return &SiteConfigHandler{service: service, activity: activity}
}

// Get returns the site configuration
func (h *SiteConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Get(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// Save creates or replaces the site configuration (admin)
func (h *SiteConfigHandler) Save(w http.ResponseWriter, r *http.Request) {
	var cfg models.SiteConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if cfg.SiteName == "" {
		pkghttp.WriteBadRequest(w, "Site name is required")
		return
	}

	saved, err := h.service.Save(r.Context(), cfg)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.activity.Log(services.LogActivityParams{
		Action:     models.ActivityActionUpdate,
		EntityType: models.ActivityEntityConfig,
		EntityID:   saved.ID,
		EntityName: saved.SiteName,
		UserEmail:  actorEmail(r),
		Details:    "Updated site configuration",
	})

	writeJSON(w, http.StatusOK, saved)
}
