package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ashish-04-codes/Portfolio/internal/docstore"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/google/uuid"
)

const (
	profileCollection = "profile"
	profileDocID      = "main"
)

// ProfileService manages the single about/bio document.
type ProfileService struct {
	store  docstore.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewProfileService creates a new ProfileService
func NewProfileService(store docstore.Store, logger *slog.Logger) *ProfileService {
	return &ProfileService{store: store, logger: logger, now: time.Now}
}

// Get returns the profile or models.ErrNotFound when the site has not
// been seeded yet.
func (s *ProfileService) Get(ctx context.Context) (*models.Profile, error) {
	raw, err := s.store.GetDocument(ctx, profileCollection, profileDocID)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := decode(raw, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save creates or replaces the profile document. Sections without an id
// are assigned one.
func (s *ProfileService) Save(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	profile.ID = profileDocID
	for i := range profile.Sections {
		if profile.Sections[i].ID == "" {
			profile.Sections[i].ID = uuid.New().String()
		}
	}

	now := s.now().UTC().Format(time.RFC3339)
	if profile.CreatedAt == "" {
		if existing, err := s.Get(ctx); err == nil {
			profile.CreatedAt = existing.CreatedAt
		} else {
			profile.CreatedAt = now
		}
	}
	profile.UpdatedAt = now

	if err := s.store.SaveDocument(ctx, profileCollection, profileDocID, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile saved")
	return &profile, nil
}
