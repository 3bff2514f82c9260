package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeonck/tutoria/internal/entities"
)

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	store, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := openTestStore(t, dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, store.Available())
}

func TestPersistAndReload(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	require.NoError(t, store.DB.AutoMigrate(&entities.Tutorial{}))
	tutorial := entities.Tutorial{
		Title:      "Persisted Tutorial",
		Category:   "React",
		Difficulty: entities.DifficultyBeginner,
		Duration:   30,
		Tags:       entities.StringList{"react"},
	}
	require.NoError(t, store.DB.Create(&tutorial).Error)
	require.NoError(t, store.Persist())
	require.NoError(t, store.Close())

	reopened := openTestStore(t, dir)
	var loaded entities.Tutorial
	require.NoError(t, reopened.DB.First(&loaded, tutorial.ID).Error)
	assert.Equal(t, "Persisted Tutorial", loaded.Title)
	assert.Equal(t, entities.StringList{"react"}, loaded.Tags)
}

func TestOpenWithoutSnapshotStartsEmpty(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	var n int64
	require.NoError(t, store.DB.Raw("SELECT COUNT(*) FROM sqlite_master").Scan(&n).Error)
	assert.Zero(t, n)
}

func TestOpenWithCorruptSnapshotStartsFresh(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotFileName), []byte("not a database"), 0o644))

	store := openTestStore(t, dir)
	assert.True(t, store.Available())

	// The store must be usable despite the bad snapshot.
	require.NoError(t, store.DB.AutoMigrate(&entities.Tutorial{}))
	require.NoError(t, store.DB.Create(&entities.Tutorial{
		Title:      "After Recovery",
		Category:   "React",
		Difficulty: entities.DifficultyBeginner,
		Duration:   10,
		Tags:       entities.StringList{"react"},
	}).Error)
}

func TestVersionRoundTrip(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	assert.Zero(t, store.Version())
	require.NoError(t, store.WriteVersion(SchemaVersion))
	assert.Equal(t, SchemaVersion, store.Version())
}

func TestVersionUnparseableIsZero(t *testing.T) {
	dir := t.TempDir()
	store := openTestStore(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, VersionFileName), []byte("banana"), 0o644))
	assert.Zero(t, store.Version())
}

func TestResetRemovesSnapshotAndVersion(t *testing.T) {
	dir := t.TempDir()
	store := openTestStore(t, dir)

	require.NoError(t, store.DB.AutoMigrate(&entities.Tutorial{}))
	require.NoError(t, store.Persist())
	require.NoError(t, store.WriteVersion(SchemaVersion))

	require.NoError(t, store.Reset())
	_, err := os.Stat(store.SnapshotPath())
	assert.True(t, os.IsNotExist(err))
	assert.Zero(t, store.Version())

	// Reset is idempotent.
	require.NoError(t, store.Reset())
}

func TestMarkUnavailable(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	store.MarkUnavailable()
	assert.False(t, store.Available())
	assert.ErrorIs(t, store.Persist(), ErrStoreUnavailable)
}
