package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/Ashish-04-codes/Portfolio/internal/docstore"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/google/uuid"
)

const skillCollection = "skills"

// SkillService manages the skills board entries.
type SkillService struct {
	store  docstore.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewSkillService creates a new SkillService
func NewSkillService(store docstore.Store, logger *slog.Logger) *SkillService {
	return &SkillService{store: store, logger: logger, now: time.Now}
}

// GetAll returns all skills ordered by their explicit order field, with
// unordered entries sorted to the end.
func (s *SkillService) GetAll(ctx context.Context) ([]models.Skill, error) {
	raws, err := s.store.GetCollection(ctx, skillCollection)
	if err != nil {
		return nil, err
	}

	skills, err := docstore.DecodeAll[models.Skill](raws)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(skills, func(i, j int) bool {
		return skillOrder(skills[i]) < skillOrder(skills[j])
	})
	return skills, nil
}

// GetByCategory returns the skills of one category, ordered.
func (s *SkillService) GetByCategory(ctx context.Context, category string) ([]models.Skill, error) {
	skills, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Skill, 0, len(skills))
	for _, skill := range skills {
		if skill.Category == category {
			filtered = append(filtered, skill)
		}
	}
	return filtered, nil
}

// GetFeatured returns only skills flagged as featured.
func (s *SkillService) GetFeatured(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]models.Skill, 0, len(skills))
	for _, skill := range skills {
		if skill.Featured {
			featured = append(featured, skill)
		}
	}
	return featured, nil
}

// GetByID returns a single skill or models.ErrNotFound.
func (s *SkillService) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	raw, err := s.store.GetDocument(ctx, skillCollection, id)
	if err != nil {
		return nil, err
	}

	var skill models.Skill
	if err := decode(raw, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// Create stores a new skill. Missing order fields are assigned the next
// position at the end of the board.
func (s *SkillService) Create(ctx context.Context, skill models.Skill) (*models.Skill, error) {
	skill.ID = uuid.New().String()
	if skill.Order == nil {
		existing, err := s.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		order := len(existing)
		skill.Order = &order
	}
	if skill.Trend == "" {
		skill.Trend = models.SkillTrendStable
	}

	now := s.now().UTC().Format(time.RFC3339)
	skill.CreatedAt = now
	skill.UpdatedAt = now

	if err := s.store.SaveDocument(ctx, skillCollection, skill.ID, skill); err != nil {
		return nil, err
	}

	s.logger.Info("skill created", slog.String("skill_id", skill.ID), slog.String("name", skill.Name))
	return &skill, nil
}

// Update replaces a skill, preserving its identity and creation time.
func (s *SkillService) Update(ctx context.Context, id string, skill models.Skill) (*models.Skill, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	skill.ID = existing.ID
	skill.CreatedAt = existing.CreatedAt
	skill.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.store.SaveDocument(ctx, skillCollection, id, skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// Delete removes a skill.
func (s *SkillService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.RemoveDocument(ctx, skillCollection, id)
}

// Reorder rewrites the order field of every skill to match the given
// id sequence. Unknown ids are ignored.
func (s *SkillService) Reorder(ctx context.Context, ids []string) error {
	skills, err := s.GetAll(ctx)
	if err != nil {
		return err
	}

	byID := make(map[string]models.Skill, len(skills))
	for _, skill := range skills {
		byID[skill.ID] = skill
	}

	now := s.now().UTC().Format(time.RFC3339)
	for i, id := range ids {
		skill, ok := byID[id]
		if !ok {
			continue
		}
		order := i
		skill.Order = &order
		skill.UpdatedAt = now
		if err := s.store.SaveDocument(ctx, skillCollection, id, skill); err != nil {
			return err
		}
	}
	return nil
}

func skillOrder(skill models.Skill) int {
	if skill.Order == nil {
		return 999
	}
	return *skill.Order
}
