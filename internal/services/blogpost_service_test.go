package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
)

func newTestBlogPostService(t *testing.T) *BlogPostService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewBlogPostService(NewMockDocStore(), logger)
}

func TestBlogPostGetAll_NewestFirst(t *testing.T) {
	svc := newTestBlogPostService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.BlogPost{Title: "Old", PublishDate: "2024-01-15"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.BlogPost{Title: "New", PublishDate: "2025-06-01"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.BlogPost{Title: "Middle", PublishDate: "2024-11-30"})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"New", "Middle", "Old"}, []string{all[0].Title, all[1].Title, all[2].Title})
}

func TestBlogPostGetPublished(t *testing.T) {
	svc := newTestBlogPostService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.BlogPost{Title: "Live", PublishDate: "2025-01-01"})
	require.NoError(t, err)
	draft, err := svc.Create(ctx, models.BlogPost{Title: "Draft", PublishDate: "2025-02-01"})
	require.NoError(t, err)
	_, err = svc.SetPublished(ctx, draft.ID, false)
	require.NoError(t, err)

	published, err := svc.GetPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Live", published[0].Title)
}

func TestBlogPostUpdate_PreservesIdentity(t *testing.T) {
	svc := newTestBlogPostService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.BlogPost{Title: "Before", PublishDate: "2025-01-01"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, models.BlogPost{Title: "After", PublishDate: "2025-01-01"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "After", updated.Title)
}

func TestBlogPostDelete_Missing(t *testing.T) {
	svc := newTestBlogPostService(t)

	assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), models.ErrNotFound)
}
