package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Ashish-04-codes/Portfolio/internal/docstore"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
)

const (
	siteConfigCollection = "config"
	siteConfigDocID      = "site"
)

// SiteConfigService manages the single site-wide settings document.
type SiteConfigService struct {
	store  docstore.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewSiteConfigService creates a new SiteConfigService
func NewSiteConfigService(store docstore.Store, logger *slog.Logger) *SiteConfigService {
	return &SiteConfigService{store: store, logger: logger, now: time.Now}
}

// Get returns the site configuration, falling back to built-in defaults
// when no document has been saved yet.
func (s *SiteConfigService) Get(ctx context.Context) (*models.SiteConfig, error) {
	raw, err := s.store.GetDocument(ctx, siteConfigCollection, siteConfigDocID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return defaultSiteConfig(), nil
		}
		return nil, err
	}

	var cfg models.SiteConfig
	if err := decode(raw, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save creates or replaces the site configuration.
func (s *SiteConfigService) Save(ctx context.Context, cfg models.SiteConfig) (*models.SiteConfig, error) {
	cfg.ID = siteConfigDocID
	cfg.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.store.SaveDocument(ctx, siteConfigCollection, siteConfigDocID, cfg); err != nil {
		return nil, err
	}

	s.logger.Info("site config saved")
	return &cfg, nil
}

func defaultSiteConfig() *models.SiteConfig {
	return &models.SiteConfig{
		ID:           siteConfigDocID,
		SiteName:     "The Portfolio Times",
		Tagline:      "All the work that's fit to print",
		HeroTitle:    "The Portfolio Times",
		HeroSubtitle: "Daily dispatches from the workbench",
	}
}
