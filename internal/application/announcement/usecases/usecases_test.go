package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticeboard/internal/application/announcement/dto"
	"noticeboard/internal/domain/announcement"
	"noticeboard/internal/infrastructure/database/dbtest"
	"noticeboard/internal/infrastructure/repository"
	"noticeboard/internal/shared/db"
	"noticeboard/internal/shared/errors"
	"noticeboard/internal/shared/logger"
	"noticeboard/internal/shared/services/markdown"
)

type fixture struct {
	categories    announcement.CategoryRepository
	announcements announcement.AnnouncementRepository

	create *CreateAnnouncementUseCase
	update *UpdateAnnouncementUseCase
	delete *DeleteAnnouncementUseCase
	get    *GetAnnouncementUseCase
	list   *ListAnnouncementsUseCase
}

func newFixture(t *testing.T) *fixture {
	database := dbtest.New(t)
	repo := repository.NewAnnouncementRepository(database)
	txMgr := db.NewTransactionManager(database)
	md := markdown.NewMarkdownService()
	log := logger.NewNopLogger()

	return &fixture{
		categories:    repository.NewCategoryRepository(database),
		announcements: repo,
		create:        NewCreateAnnouncementUseCase(repo, txMgr, md, log),
		update:        NewUpdateAnnouncementUseCase(repo, txMgr, md, log),
		delete:        NewDeleteAnnouncementUseCase(repo, log),
		get:           NewGetAnnouncementUseCase(repo, md, log),
		list:          NewListAnnouncementsUseCase(repo, md, log),
	}
}

// seedCategories creates City (id 1) and Health (id 2) on a fresh database.
func (f *fixture) seedCategories(t *testing.T, names ...string) []uint {
	t.Helper()

	ids := make([]uint, 0, len(names))
	for _, name := range names {
		c := &announcement.Category{Name: name}
		require.NoError(t, f.categories.Create(context.Background(), c))
		ids = append(ids, c.ID)
	}
	return ids
}

func (f *fixture) count(t *testing.T) int {
	t.Helper()
	all, err := f.announcements.List(context.Background(), 1000, 0)
	require.NoError(t, err)
	return len(all)
}

func categoryIDs(resp *dto.AnnouncementResponse) []uint {
	ids := make([]uint, 0, len(resp.Categories))
	for _, c := range resp.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestCreateAnnouncement_RequiresCategories(t *testing.T) {
	f := newFixture(t)

	for _, ids := range [][]uint{nil, {}} {
		_, err := f.create.Execute(context.Background(), dto.CreateAnnouncementRequest{
			Title:       "T",
			Content:     "C",
			CategoryIDs: ids,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, "Categories can not be empty", errors.GetAppError(err).Message)
	}

	assert.Zero(t, f.count(t))
}

func TestCreateAnnouncement_ValidatesFields(t *testing.T) {
	f := newFixture(t)
	ids := f.seedCategories(t, "City")

	_, err := f.create.Execute(context.Background(), dto.CreateAnnouncementRequest{
		Title:       "",
		Content:     "C",
		CategoryIDs: ids,
	})

	assert.True(t, errors.IsValidationError(err))
	assert.Zero(t, f.count(t))
}

func TestCreateAnnouncement_HydratesCategories(t *testing.T) {
	f := newFixture(t)
	ids := f.seedCategories(t, "City", "Health")
	published := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	created, err := f.create.Execute(context.Background(), dto.CreateAnnouncementRequest{
		Title:       "T",
		Content:     "C *markdown*",
		PublishedAt: &published,
		CategoryIDs: ids,
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "T", created.Title)
	assert.Contains(t, created.ContentHTML, "<em>markdown</em>")
	require.Len(t, created.Categories, 2)
	assert.Equal(t, "City", created.Categories[0].Name)
	assert.Equal(t, "Health", created.Categories[1].Name)
	assert.False(t, created.Categories[0].CreatedAt.IsZero())
}

func TestCreateAnnouncement_UnknownCategoryRollsBack(t *testing.T) {
	f := newFixture(t)
	ids := f.seedCategories(t, "City")

	_, err := f.create.Execute(context.Background(), dto.CreateAnnouncementRequest{
		Title:       "T",
		Content:     "C",
		CategoryIDs: []uint{ids[0], 404},
	})

	require.Error(t, err)
	assert.True(t, errors.IsWriteFailedError(err))
	assert.Equal(t, "Announcement creation failed", errors.GetAppError(err).Message)
	assert.Zero(t, f.count(t))

	// No orphan links either: the only category stays deletable
	assert.NoError(t, f.categories.Delete(context.Background(), ids[0]))
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ids := f.seedCategories(t, "City", "Health")
	ctx := context.Background()

	created, err := f.create.Execute(ctx, dto.CreateAnnouncementRequest{Title: "T", Content: "C", CategoryIDs: ids})
	require.NoError(t, err)

	found, err := f.get.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestGetAnnouncement_Missing(t *testing.T) {
	f := newFixture(t)

	_, err := f.get.Execute(context.Background(), 12)
	require.Error(t, err)
	assert.True(t, errors.IsRecordNotFound(err))
}

func TestUpdateAnnouncement_Categories(t *testing.T) {
	f := newFixture(t)
	ids := f.seedCategories(t, "City", "Health", "Culture")
	ctx := context.Background()

	created, err := f.create.Execute(ctx, dto.CreateAnnouncementRequest{Title: "T", Content: "C", CategoryIDs: ids[:2]})
	require.NoError(t, err)

	t.Run("empty list keeps the set", func(t *testing.T) {
		title := "T2"
		updated, err := f.update.Execute(ctx, dto.UpdateAnnouncementRequest{ID: created.ID, Title: &title, CategoryIDs: []uint{}})
		require.NoError(t, err)
		assert.Equal(t, "T2", updated.Title)
		assert.Equal(t, "C", updated.Content)
		assert.Equal(t, ids[:2], categoryIDs(updated))
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("non-empty list replaces the set", func(t *testing.T) {
		updated, err := f.update.Execute(ctx, dto.UpdateAnnouncementRequest{ID: created.ID, CategoryIDs: []uint{ids[2]}})
		require.NoError(t, err)
		assert.Equal(t, []uint{ids[2]}, categoryIDs(updated))
	})

	t.Run("unknown category rolls back", func(t *testing.T) {
		content := "changed"
		_, err := f.update.Execute(ctx, dto.UpdateAnnouncementRequest{ID: created.ID, Content: &content, CategoryIDs: []uint{999}})
		require.Error(t, err)
		assert.True(t, errors.IsWriteFailedError(err))
		assert.Equal(t, "Announcement update failed", errors.GetAppError(err).Message)

		found, err := f.get.Execute(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "C", found.Content)
		assert.Equal(t, []uint{ids[2]}, categoryIDs(found))
	})

	t.Run("missing announcement", func(t *testing.T) {
		_, err := f.update.Execute(ctx, dto.UpdateAnnouncementRequest{ID: created.ID + 10})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteAnnouncement(t *testing.T) {
	f := newFixture(t)
	ids := f.seedCategories(t, "City")
	ctx := context.Background()

	created, err := f.create.Execute(ctx, dto.CreateAnnouncementRequest{Title: "T", Content: "C", CategoryIDs: ids})
	require.NoError(t, err)

	ok, err := f.delete.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.get.Execute(ctx, created.ID)
	assert.True(t, errors.IsRecordNotFound(err))

	_, err = f.delete.Execute(ctx, created.ID)
	assert.True(t, errors.IsNotFoundError(err))

	// Links went with the announcement
	assert.NoError(t, f.categories.Delete(ctx, ids[0]))
}

func TestListAnnouncements_MatchesSlicing(t *testing.T) {
	f := newFixture(t)
	ids := f.seedCategories(t, "City")
	ctx := context.Background()

	var all []uint
	for i := 0; i < 7; i++ {
		created, err := f.create.Execute(ctx, dto.CreateAnnouncementRequest{Title: "T", Content: "C", CategoryIDs: ids})
		require.NoError(t, err)
		all = append(all, created.ID)
	}

	windows := []struct{ limit, offset int }{
		{limit: 3, offset: 0},
		{limit: 3, offset: 3},
		{limit: 3, offset: 6},
		{limit: 10, offset: 2},
		{limit: 2, offset: 7},
	}

	for _, w := range windows {
		page, err := f.list.Execute(ctx, w.limit, w.offset)
		require.NoError(t, err)

		end := w.offset + w.limit
		if end > len(all) {
			end = len(all)
		}
		want := all[min(w.offset, len(all)):end]

		got := make([]uint, 0, len(page))
		for _, a := range page {
			got = append(got, a.ID)
		}
		assert.Equal(t, want, got, "limit=%d offset=%d", w.limit, w.offset)
	}
}

func TestCityHealthScenario(t *testing.T) {
	f := newFixture(t)
	ids := f.seedCategories(t, "City", "Health")
	require.Equal(t, []uint{1, 2}, ids)
	ctx := context.Background()

	created, err := f.create.Execute(ctx, dto.CreateAnnouncementRequest{Title: "T", Content: "C", CategoryIDs: []uint{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "T", created.Title)
	assert.Equal(t, "C", created.Content)
	assert.Equal(t, []uint{1, 2}, categoryIDs(created))

	updated, err := f.update.Execute(ctx, dto.UpdateAnnouncementRequest{ID: created.ID, CategoryIDs: []uint{1}})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "T", updated.Title)
	require.Len(t, updated.Categories, 1)
	assert.Equal(t, "City", updated.Categories[0].Name)
}
