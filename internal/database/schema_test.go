package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeonck/tutoria/internal/entities"
	"github.com/jeonck/tutoria/internal/seed"
)

func TestEnsureSchemaBuildsFreshDatabase(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	require.NoError(t, EnsureSchema(store))

	var tutorialCount, collectionCount int64
	require.NoError(t, store.DB.Model(&entities.Tutorial{}).Count(&tutorialCount).Error)
	require.NoError(t, store.DB.Model(&entities.TechStackCollection{}).Count(&collectionCount).Error)
	assert.Equal(t, int64(len(seed.AllTutorials())), tutorialCount)
	assert.Equal(t, int64(len(seed.DefaultCollections())), collectionCount)

	assert.Equal(t, SchemaVersion, store.Version())
	assert.FileExists(t, store.SnapshotPath())
}

func TestEnsureSchemaAssignsCollectionMatches(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	require.NoError(t, EnsureSchema(store))

	var collections []entities.TechStackCollection
	require.NoError(t, store.DB.Find(&collections).Error)

	matchedAny := false
	for _, c := range collections {
		if len(c.TutorialIDs) > 0 {
			matchedAny = true
			assert.Greater(t, c.EstimatedDuration, 0, "collection %q has tutorials but zero duration", c.Name)
		}
	}
	assert.True(t, matchedAny, "no collection matched any seed tutorial")
}

func TestEnsureSchemaKeepsUserData(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	require.NoError(t, EnsureSchema(store))

	custom := entities.Tutorial{
		Title:      "My Own Notes",
		Category:   "React",
		Difficulty: entities.DifficultyBeginner,
		Duration:   15,
		Tags:       entities.StringList{"react", "notes"},
	}
	require.NoError(t, store.DB.Create(&custom).Error)
	require.NoError(t, store.Persist())
	require.NoError(t, store.Close())

	reopened := openTestStore(t, dir)
	require.NoError(t, EnsureSchema(reopened))

	var found entities.Tutorial
	require.NoError(t, reopened.DB.Where("title = ?", "My Own Notes").First(&found).Error)
	assert.Equal(t, custom.ID, found.ID)
}

func TestEnsureSchemaRebuildsOnVersionMismatch(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	require.NoError(t, EnsureSchema(store))

	custom := entities.Tutorial{
		Title:      "Doomed Tutorial",
		Category:   "React",
		Difficulty: entities.DifficultyBeginner,
		Duration:   15,
		Tags:       entities.StringList{"react"},
	}
	require.NoError(t, store.DB.Create(&custom).Error)
	require.NoError(t, store.Persist())
	require.NoError(t, store.WriteVersion(SchemaVersion - 1))
	require.NoError(t, store.Close())

	reopened := openTestStore(t, dir)
	require.NoError(t, EnsureSchema(reopened))

	var n int64
	require.NoError(t, reopened.DB.Model(&entities.Tutorial{}).
		Where("title = ?", "Doomed Tutorial").Count(&n).Error)
	assert.Zero(t, n, "rebuild should discard pre-migration data")
	assert.Equal(t, SchemaVersion, reopened.Version())
}

func TestEnsureSchemaRebuildsWhenSeedRowsMissing(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	require.NoError(t, EnsureSchema(store))
	require.NoError(t, store.DB.Where("category = ?", "React").Delete(&entities.Tutorial{}).Error)
	require.NoError(t, store.Persist())
	require.NoError(t, store.Close())

	reopened := openTestStore(t, dir)
	require.NoError(t, EnsureSchema(reopened))

	var tutorialCount int64
	require.NoError(t, reopened.DB.Model(&entities.Tutorial{}).Count(&tutorialCount).Error)
	assert.Equal(t, int64(len(seed.AllTutorials())), tutorialCount)
}

func TestEnsureSchemaPatchesMissingMarkdownColumns(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	require.NoError(t, EnsureSchema(store))

	// Simulate a pre-v6 database: drop two of the provenance columns.
	migrator := store.DB.Migrator()
	require.NoError(t, migrator.DropColumn(&entities.Tutorial{}, "uploaded_by"))
	require.NoError(t, migrator.DropColumn(&entities.Tutorial{}, "is_shared_markdown"))
	require.NoError(t, store.Persist())
	require.NoError(t, store.Close())

	reopened := openTestStore(t, dir)
	require.NoError(t, EnsureSchema(reopened))

	m := reopened.DB.Migrator()
	assert.True(t, m.HasColumn(&entities.Tutorial{}, "uploaded_by"))
	assert.True(t, m.HasColumn(&entities.Tutorial{}, "is_shared_markdown"))

	// The patch path keeps existing rows rather than reseeding.
	var tutorialCount int64
	require.NoError(t, reopened.DB.Model(&entities.Tutorial{}).Count(&tutorialCount).Error)
	assert.Equal(t, int64(len(seed.AllTutorials())), tutorialCount)
}

func TestEnsureSchemaRecreatesSharedFilesTable(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	require.NoError(t, EnsureSchema(store))
	require.NoError(t, store.DB.Migrator().DropTable(&entities.SharedMarkdownFile{}))
	require.NoError(t, store.Persist())
	require.NoError(t, store.Close())

	reopened := openTestStore(t, dir)
	require.NoError(t, EnsureSchema(reopened))
	assert.True(t, reopened.DB.Migrator().HasTable(&entities.SharedMarkdownFile{}))
}

func TestEnsureSchemaUnavailableStore(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	store.MarkUnavailable()
	assert.ErrorIs(t, EnsureSchema(store), ErrStoreUnavailable)
}
