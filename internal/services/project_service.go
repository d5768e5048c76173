package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Ashish-04-codes/Portfolio/internal/docstore"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/google/uuid"
)

const projectCollection = "projects"

// ProjectService is thin CRUD over the document store for portfolio
// projects.
type ProjectService struct {
	store  docstore.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewProjectService creates a new ProjectService
func NewProjectService(store docstore.Store, logger *slog.Logger) *ProjectService {
	return &ProjectService{store: store, logger: logger, now: time.Now}
}

// GetAll returns every project ordered by its explicit order field.
func (s *ProjectService) GetAll(ctx context.Context) ([]models.Project, error) {
	raw, err := s.store.GetCollection(ctx, projectCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects, err := docstore.DecodeAll[models.Project](raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].SortOrder() < projects[j].SortOrder()
	})
	return projects, nil
}

// GetByID returns one project or models.ErrNotFound.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	raw, err := s.store.GetDocument(ctx, projectCollection, id)
	if err != nil {
		return nil, err
	}

	var project models.Project
	if err := decode(raw, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetPublished returns only published projects, in order.
func (s *ProjectService) GetPublished(ctx context.Context) ([]models.Project, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]models.Project, 0, len(all))
	for _, p := range all {
		if p.IsPublished() {
			published = append(published, p)
		}
	}
	return published, nil
}

// GetFeatured returns published projects flagged as featured.
func (s *ProjectService) GetFeatured(ctx context.Context) ([]models.Project, error) {
	published, err := s.GetPublished(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]models.Project, 0, len(published))
	for _, p := range published {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// Create assigns id, order and timestamps and persists the project.
func (s *ProjectService) Create(ctx context.Context, project models.Project) (*models.Project, error) {
	existing, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Format(time.RFC3339)
	order := len(existing)
	project.ID = uuid.New().String()
	project.Order = &order
	if project.Published == nil {
		published := true
		project.Published = &published
	}
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.store.SaveDocument(ctx, projectCollection, project.ID, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created", slog.String("project_id", project.ID))
	return &project, nil
}

// Update merges the incoming fields over the stored document and bumps
// updatedAt. The caller sends the full merged document; created
// timestamp and id are preserved from the stored copy.
func (s *ProjectService) Update(ctx context.Context, id string, project models.Project) (*models.Project, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.store.SaveDocument(ctx, projectCollection, id, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated", slog.String("project_id", id))
	return &project, nil
}

// Delete removes a project; missing ids report models.ErrNotFound.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.store.RemoveDocument(ctx, projectCollection, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", slog.String("project_id", id))
	return nil
}

// SetPublished toggles the published flag.
func (s *ProjectService) SetPublished(ctx context.Context, id string, published bool) (*models.Project, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Published = &published
	existing.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.store.SaveDocument(ctx, projectCollection, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Reorder rewrites the order fields to match the given id sequence.
// Unknown ids are skipped.
func (s *ProjectService) Reorder(ctx context.Context, ids []string) error {
	all, err := s.GetAll(ctx)
	if err != nil {
		return err
	}

	byID := make(map[string]*models.Project, len(all))
	for i := range all {
		byID[all[i].ID] = &all[i]
	}

	now := s.now().UTC().Format(time.RFC3339)
	for index, id := range ids {
		project, ok := byID[id]
		if !ok {
			continue
		}
		order := index
		project.Order = &order
		project.UpdatedAt = now
		if err := s.store.SaveDocument(ctx, projectCollection, id, project); err != nil {
			return err
		}
	}
	return nil
}
