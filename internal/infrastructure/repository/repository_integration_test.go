package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/infrastructure/database/dbtest"
	"noticeboard/internal/shared/errors"
)

func seedCategories(t *testing.T, repo announcement.CategoryRepository, names ...string) []uint {
	t.Helper()

	ids := make([]uint, 0, len(names))
	for _, name := range names {
		c := &announcement.Category{Name: name}
		require.NoError(t, repo.Create(context.Background(), c))
		ids = append(ids, c.ID)
	}
	return ids
}

func TestCategoryRepository(t *testing.T) {
	database := dbtest.New(t)
	repo := NewCategoryRepository(database)
	ctx := context.Background()

	ids := seedCategories(t, repo, "City", "Health")

	t.Run("list in id order", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "City", list[0].Name)
		assert.Equal(t, "Health", list[1].Name)
		assert.False(t, list[0].CreatedAt.IsZero())
	})

	t.Run("duplicate name", func(t *testing.T) {
		err := repo.Create(ctx, &announcement.Category{Name: "City"})
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("update name and timestamp", func(t *testing.T) {
		before, err := repo.GetByID(ctx, ids[1])
		require.NoError(t, err)

		name := "Health & Care"
		require.NoError(t, repo.Update(ctx, ids[1], &name))

		after, err := repo.GetByID(ctx, ids[1])
		require.NoError(t, err)
		assert.Equal(t, name, after.Name)
		assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	})

	t.Run("exists and delete", func(t *testing.T) {
		ok, err := repo.Exists(ctx, ids[0])
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, repo.Delete(ctx, ids[0]))

		ok, err = repo.Exists(ctx, ids[0])
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAnnouncementRepository_CreateAndGet(t *testing.T) {
	database := dbtest.New(t)
	categories := NewCategoryRepository(database)
	repo := NewAnnouncementRepository(database)
	ctx := context.Background()

	ids := seedCategories(t, categories, "City", "Health")
	published := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	a := announcement.NewAnnouncement("Senior Health Checkup", "Free checkups", &published, []uint{ids[1], ids[0]})
	require.NoError(t, repo.Create(ctx, a))
	require.NotZero(t, a.ID)

	found, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Health Checkup", found.Title)
	require.NotNil(t, found.PublishedAt)
	assert.True(t, published.Equal(*found.PublishedAt))
	assert.Equal(t, ids, found.CategoryIDs(), "categories come back in id order")
	assert.Equal(t, "City", found.Categories[0].Name)

	_, err = repo.GetByID(ctx, a.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAnnouncementRepository_CreateWithUnknownCategory(t *testing.T) {
	database := dbtest.New(t)
	repo := NewAnnouncementRepository(database)

	err := repo.Create(context.Background(), announcement.NewAnnouncement("T", "C", nil, []uint{42}))
	require.Error(t, err)
	assert.True(t, errors.IsForeignKeyError(err))
}

func TestAnnouncementRepository_List(t *testing.T) {
	database := dbtest.New(t)
	categories := NewCategoryRepository(database)
	repo := NewAnnouncementRepository(database)
	ctx := context.Background()

	ids := seedCategories(t, categories, "City")
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, repo.Create(ctx, announcement.NewAnnouncement(title, "body", nil, ids)))
	}

	page, err := repo.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "b", page[0].Title)
	assert.Equal(t, "c", page[1].Title)
	assert.Equal(t, ids, page[0].CategoryIDs())

	tail, err := repo.List(ctx, 10, 4)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, "e", tail[0].Title)

	empty, err := repo.List(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAnnouncementRepository_UpdateAndReplaceCategories(t *testing.T) {
	database := dbtest.New(t)
	categories := NewCategoryRepository(database)
	repo := NewAnnouncementRepository(database)
	ctx := context.Background()

	ids := seedCategories(t, categories, "City", "Health", "Culture")
	a := announcement.NewAnnouncement("T", "C", nil, ids[:2])
	require.NoError(t, repo.Create(ctx, a))

	title := "T2"
	require.NoError(t, repo.Update(ctx, a.ID, announcement.Patch{Title: &title}))
	require.NoError(t, repo.ReplaceCategories(ctx, a.ID, []uint{ids[2], ids[2]}))

	found, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", found.Title)
	assert.Equal(t, "C", found.Content)
	assert.Equal(t, []uint{ids[2]}, found.CategoryIDs())
}

func TestAnnouncementRepository_DeleteCascadesLinks(t *testing.T) {
	database := dbtest.New(t)
	categories := NewCategoryRepository(database)
	repo := NewAnnouncementRepository(database)
	ctx := context.Background()

	ids := seedCategories(t, categories, "City")
	a := announcement.NewAnnouncement("T", "C", nil, ids)
	require.NoError(t, repo.Create(ctx, a))

	err := categories.Delete(ctx, ids[0])
	require.Error(t, err)
	assert.True(t, errors.IsForeignKeyError(err))

	require.NoError(t, repo.Delete(ctx, a.ID))

	ok, err := repo.Exists(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, categories.Delete(ctx, ids[0]))
}
