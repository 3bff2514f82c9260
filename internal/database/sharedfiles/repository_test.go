package sharedfiles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/entities"
)

func setupTestRepo(t *testing.T) (*database.Store, *Repository) {
	t.Helper()
	store, err := database.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	err = store.DB.AutoMigrate(
		&entities.Tutorial{},
		&entities.SharedMarkdownFile{},
	)
	require.NoError(t, err)

	return store, NewRepository(store)
}

func TestRegisterDefaults(t *testing.T) {
	store, repo := setupTestRepo(t)

	id, err := repo.Register("guide.md", "# Guide", nil, "")
	require.NoError(t, err)
	require.NotZero(t, id)

	var file entities.SharedMarkdownFile
	require.NoError(t, store.DB.First(&file, id).Error)
	assert.Equal(t, DefaultUploader, file.UploadedBy)
	assert.True(t, file.IsActive)
	assert.Zero(t, file.DownloadCount)
	assert.False(t, file.UploadedAt.IsZero())
}

func TestRegisterValidation(t *testing.T) {
	_, repo := setupTestRepo(t)

	_, err := repo.Register("", "# Guide", nil, "bob")
	assert.Error(t, err)
	_, err = repo.Register("guide.md", "", nil, "bob")
	assert.Error(t, err)
}

func TestListJoinsTutorialTitle(t *testing.T) {
	store, repo := setupTestRepo(t)

	tutorial := entities.Tutorial{
		Title:      "Linked Tutorial",
		Category:   "React",
		Difficulty: entities.DifficultyBeginner,
		Duration:   10,
		Tags:       entities.StringList{"react"},
	}
	require.NoError(t, store.DB.Create(&tutorial).Error)

	linkedID, err := repo.Register("linked.md", "# Linked", &tutorial.ID, "alice")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	orphanID, err := repo.Register("orphan.md", "# Orphan", nil, "bob")
	require.NoError(t, err)

	files, err := repo.List()
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Newest upload first.
	assert.Equal(t, orphanID, files[0].ID)
	assert.Empty(t, files[0].TutorialTitle)
	assert.Equal(t, linkedID, files[1].ID)
	assert.Equal(t, "Linked Tutorial", files[1].TutorialTitle)
}

func TestListToleratesDanglingReference(t *testing.T) {
	store, repo := setupTestRepo(t)

	tutorial := entities.Tutorial{
		Title:      "Ephemeral",
		Category:   "React",
		Difficulty: entities.DifficultyBeginner,
		Duration:   10,
		Tags:       entities.StringList{"react"},
	}
	require.NoError(t, store.DB.Create(&tutorial).Error)
	_, err := repo.Register("file.md", "# F", &tutorial.ID, "alice")
	require.NoError(t, err)

	require.NoError(t, store.DB.Delete(&entities.Tutorial{}, tutorial.ID).Error)

	files, err := repo.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Empty(t, files[0].TutorialTitle)
}

func TestDownloadIncrementsCounter(t *testing.T) {
	store, repo := setupTestRepo(t)

	id, err := repo.Register("guide.md", "# Guide", nil, "alice")
	require.NoError(t, err)

	first, err := repo.GetDownload(id)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "guide.md", first.Filename)
	assert.Equal(t, "# Guide", first.Content)

	_, err = repo.GetDownload(id)
	require.NoError(t, err)

	var file entities.SharedMarkdownFile
	require.NoError(t, store.DB.First(&file, id).Error)
	assert.Equal(t, 2, file.DownloadCount, "each download increments")
}

func TestDownloadUnknownReturnsNil(t *testing.T) {
	_, repo := setupTestRepo(t)

	payload, err := repo.GetDownload(999)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestDeactivateHidesFile(t *testing.T) {
	_, repo := setupTestRepo(t)

	id, err := repo.Register("guide.md", "# Guide", nil, "alice")
	require.NoError(t, err)

	ok, err := repo.Deactivate(id)
	require.NoError(t, err)
	assert.True(t, ok)

	files, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, files)

	payload, err := repo.GetDownload(id)
	require.NoError(t, err)
	assert.Nil(t, payload, "inactive files are not downloadable")

	ok, err = repo.Deactivate(id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnavailableStore(t *testing.T) {
	store, repo := setupTestRepo(t)
	store.MarkUnavailable()

	_, err := repo.Register("guide.md", "# Guide", nil, "")
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
	_, err = repo.List()
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}
