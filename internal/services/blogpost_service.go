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

const blogPostCollection = "blogPosts"

// BlogPostService is thin CRUD over the document store for editorial
// articles.
type BlogPostService struct {
	store  docstore.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewBlogPostService creates a new BlogPostService
func NewBlogPostService(store docstore.Store, logger *slog.Logger) *BlogPostService {
	return &BlogPostService{store: store, logger: logger, now: time.Now}
}

// GetAll returns every post, newest publish date first.
func (s *BlogPostService) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	raw, err := s.store.GetCollection(ctx, blogPostCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	posts, err := docstore.DecodeAll[models.BlogPost](raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishDate > posts[j].PublishDate
	})
	return posts, nil
}

// GetByID returns one post or models.ErrNotFound.
func (s *BlogPostService) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	raw, err := s.store.GetDocument(ctx, blogPostCollection, id)
	if err != nil {
		return nil, err
	}

	var post models.BlogPost
	if err := decode(raw, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublished returns only published posts.
func (s *BlogPostService) GetPublished(ctx context.Context) ([]models.BlogPost, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]models.BlogPost, 0, len(all))
	for _, p := range all {
		if p.IsPublished() {
			published = append(published, p)
		}
	}
	return published, nil
}

// Create assigns id and timestamps and persists the post.
func (s *BlogPostService) Create(ctx context.Context, post models.BlogPost) (*models.BlogPost, error) {
	now := s.now().UTC().Format(time.RFC3339)
	post.ID = uuid.New().String()
	if post.Published == nil {
		published := true
		post.Published = &published
	}
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := s.store.SaveDocument(ctx, blogPostCollection, post.ID, post); err != nil {
		return nil, err
	}

	s.logger.Info("blog post created", slog.String("post_id", post.ID))
	return &post, nil
}

// Update overwrites a post, preserving id and creation timestamp.
func (s *BlogPostService) Update(ctx context.Context, id string, post models.BlogPost) (*models.BlogPost, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.ID = existing.ID
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.store.SaveDocument(ctx, blogPostCollection, id, post); err != nil {
		return nil, err
	}

	s.logger.Info("blog post updated", slog.String("post_id", id))
	return &post, nil
}

// Delete removes a post; missing ids report models.ErrNotFound.
func (s *BlogPostService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.store.RemoveDocument(ctx, blogPostCollection, id); err != nil {
		return err
	}

	s.logger.Info("blog post deleted", slog.String("post_id", id))
	return nil
}

// SetPublished toggles the published flag.
func (s *BlogPostService) SetPublished(ctx context.Context, id string, published bool) (*models.BlogPost, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Published = &published
	existing.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.store.SaveDocument(ctx, blogPostCollection, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
