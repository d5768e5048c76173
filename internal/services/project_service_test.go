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

func newTestProjectService(t *testing.T) *ProjectService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewProjectService(NewMockDocStore(), logger)
}

func TestProjectCreate_AssignsDefaults(t *testing.T) {
	svc := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Project{Title: "Newsstand"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.Order)
	assert.Equal(t, 0, *created.Order)
	assert.True(t, created.IsPublished(), "new projects default to published")
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	second, err := svc.Create(ctx, models.Project{Title: "Archive"})
	require.NoError(t, err)
	assert.Equal(t, 1, *second.Order, "order appends to the end")
}

func TestProjectGetAll_SortsByOrder(t *testing.T) {
	svc := newTestProjectService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, models.Project{Title: "A"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, models.Project{Title: "B"})
	require.NoError(t, err)
	c, err := svc.Create(ctx, models.Project{Title: "C"})
	require.NoError(t, err)

	require.NoError(t, svc.Reorder(ctx, []string{c.ID, a.ID, b.ID}))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{all[0].Title, all[1].Title, all[2].Title})
}

func TestProjectGetPublishedAndFeatured(t *testing.T) {
	svc := newTestProjectService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Project{Title: "Visible", Featured: true})
	require.NoError(t, err)
	draft, err := svc.Create(ctx, models.Project{Title: "Draft", Featured: true})
	require.NoError(t, err)
	_, err = svc.SetPublished(ctx, draft.ID, false)
	require.NoError(t, err)

	published, err := svc.GetPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Visible", published[0].Title)

	featured, err := svc.GetFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Visible", featured[0].Title)
}

func TestProjectUpdate_PreservesIdentity(t *testing.T) {
	svc := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Project{Title: "Before"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, models.Project{
		ID:        "spoofed-id",
		Title:     "After",
		CreatedAt: "spoofed-timestamp",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "After", updated.Title)
}

func TestProjectUpdate_Missing(t *testing.T) {
	svc := newTestProjectService(t)

	_, err := svc.Update(context.Background(), "nope", models.Project{Title: "X"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProjectDelete(t *testing.T) {
	svc := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Project{Title: "Gone"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), models.ErrNotFound)
}

func TestProjectReorder_SkipsUnknownIDs(t *testing.T) {
	svc := newTestProjectService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, models.Project{Title: "A"})
	require.NoError(t, err)

	require.NoError(t, svc.Reorder(ctx, []string{"unknown", a.ID}))

	got, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Order)
	assert.Equal(t, 1, *got.Order)
}
