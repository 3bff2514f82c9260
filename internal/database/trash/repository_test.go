package trash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/database/tutorials"
	"github.com/jeonck/tutoria/internal/entities"
)

func setupTestRepo(t *testing.T) (*database.Store, *Repository) {
	t.Helper()
	store, err := database.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	err = store.DB.AutoMigrate(
		&entities.Tutorial{},
		&entities.TechStackCollection{},
		&entities.TrashItem{},
		&entities.SharedMarkdownFile{},
	)
	require.NoError(t, err)

	return store, NewRepository(store)
}

func deleteTutorial(t *testing.T, store *database.Store) (*entities.Tutorial, uint) {
	t.Helper()
	repo := tutorials.NewRepository(store)

	tutorial := &entities.Tutorial{
		Title:      "Doomed",
		Category:   "React",
		Difficulty: entities.DifficultyBeginner,
		Duration:   30,
		Tags:       entities.StringList{"react", "hooks"},
		IsFavorite: true,
	}
	require.NoError(t, repo.Create(tutorial))
	require.NoError(t, repo.Delete(tutorial.ID))

	var item entities.TrashItem
	require.NoError(t, store.DB.First(&item).Error)
	return tutorial, item.ID
}

func TestListNewestFirst(t *testing.T) {
	store, repo := setupTestRepo(t)

	older := entities.TrashItem{
		Type: entities.TrashTypeTutorial, OriginalID: 1, Data: "{}",
		DeletedAt: time.Now().Add(-time.Hour),
	}
	newer := entities.TrashItem{
		Type: entities.TrashTypeCollection, OriginalID: 2, Data: "{}",
		DeletedAt: time.Now(),
	}
	require.NoError(t, store.DB.Create(&older).Error)
	require.NoError(t, store.DB.Create(&newer).Error)

	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, older.ID, items[1].ID)
}

func TestRestoreTutorialGetsNewID(t *testing.T) {
	store, repo := setupTestRepo(t)
	original, trashID := deleteTutorial(t, store)

	restored, err := repo.Restore(trashID)
	require.NoError(t, err)
	assert.True(t, restored)

	var revived entities.Tutorial
	require.NoError(t, store.DB.Where("title = ?", "Doomed").First(&revived).Error)
	assert.NotEqual(t, original.ID, revived.ID, "restore must assign a fresh id")
	assert.Equal(t, original.Tags, revived.Tags)
	assert.True(t, revived.IsFavorite)
	assert.Equal(t, original.CreatedAt.Unix(), revived.CreatedAt.Unix())
	assert.False(t, revived.UpdatedAt.Before(revived.CreatedAt))

	items, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, items, "restore removes the trash item")
}

func TestRestoreCollection(t *testing.T) {
	store, repo := setupTestRepo(t)

	item := entities.TrashItem{
		Type:       entities.TrashTypeCollection,
		OriginalID: 42,
		Data:       `{"id":42,"name":"Old Path","description":"d","icon":"x","color":"#fff","tutorial_ids":[1,2],"estimated_duration":75,"difficulty":"Intermediate","tags":["react"]}`,
		DeletedAt:  time.Now(),
	}
	require.NoError(t, store.DB.Create(&item).Error)

	restored, err := repo.Restore(item.ID)
	require.NoError(t, err)
	assert.True(t, restored)

	var revived entities.TechStackCollection
	require.NoError(t, store.DB.Where("name = ?", "Old Path").First(&revived).Error)
	assert.NotEqual(t, uint(42), revived.ID)
	assert.Equal(t, entities.IDList{1, 2}, revived.TutorialIDs)
	assert.Equal(t, 75, revived.EstimatedDuration)
}

func TestRestoreUnknownIDReturnsFalse(t *testing.T) {
	_, repo := setupTestRepo(t)

	restored, err := repo.Restore(999)
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestPermanentDelete(t *testing.T) {
	store, repo := setupTestRepo(t)
	_, trashID := deleteTutorial(t, store)

	removed, err := repo.PermanentDelete(trashID)
	require.NoError(t, err)
	assert.True(t, removed)

	// The live table is untouched by a permanent delete.
	var n int64
	require.NoError(t, store.DB.Model(&entities.Tutorial{}).Count(&n).Error)
	assert.Zero(t, n)

	removed, err = repo.PermanentDelete(trashID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestEmptyIsIdempotent(t *testing.T) {
	store, repo := setupTestRepo(t)
	deleteTutorial(t, store)

	dropped, err := repo.Empty()
	require.NoError(t, err)
	assert.Equal(t, int64(1), dropped)

	dropped, err = repo.Empty()
	require.NoError(t, err)
	assert.Zero(t, dropped)

	items, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPurgeOlderThan(t *testing.T) {
	store, repo := setupTestRepo(t)

	old := entities.TrashItem{
		Type: entities.TrashTypeTutorial, OriginalID: 1, Data: "{}",
		DeletedAt: time.Now().Add(-48 * time.Hour),
	}
	recent := entities.TrashItem{
		Type: entities.TrashTypeTutorial, OriginalID: 2, Data: "{}",
		DeletedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, store.DB.Create(&old).Error)
	require.NoError(t, store.DB.Create(&recent).Error)

	purged, err := repo.PurgeOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, recent.ID, items[0].ID)
}

func TestDeleteRestoreStatsScenario(t *testing.T) {
	store, repo := setupTestRepo(t)
	tutRepo := tutorials.NewRepository(store)

	before, err := tutRepo.GetStats()
	require.NoError(t, err)

	tutorial := &entities.Tutorial{
		Title:      "X",
		Category:   "React",
		Difficulty: entities.DifficultyBeginner,
		Duration:   30,
		Tags:       entities.StringList{"react"},
	}
	require.NoError(t, tutRepo.Create(tutorial))

	after, err := tutRepo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, before.Total+1, after.Total)
	assert.Equal(t, before.TotalDuration+30, after.TotalDuration)

	require.NoError(t, tutRepo.Delete(tutorial.ID))
	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entities.TrashTypeTutorial, items[0].Type)

	restored, err := repo.Restore(items[0].ID)
	require.NoError(t, err)
	assert.True(t, restored)

	final, err := tutRepo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, before.Total+1, final.Total)

	items, err = repo.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUnavailableStore(t *testing.T) {
	store, repo := setupTestRepo(t)
	store.MarkUnavailable()

	_, err := repo.List()
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
	_, err = repo.Empty()
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}
