package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/entities"
	"github.com/jeonck/tutoria/internal/utils"
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
	)
	require.NoError(t, err)

	return store, NewRepository(store)
}

func createTutorial(t *testing.T, store *database.Store, title, category string, duration int, tags ...string) *entities.Tutorial {
	t.Helper()
	tutorial := &entities.Tutorial{
		Title:      title,
		Category:   category,
		Difficulty: entities.DifficultyBeginner,
		Duration:   duration,
		Tags:       entities.StringList(tags),
	}
	require.NoError(t, store.DB.Create(tutorial).Error)
	return tutorial
}

func newCollection(name string, tags ...string) *entities.TechStackCollection {
	return &entities.TechStackCollection{
		Name:        name,
		Description: "test collection",
		Icon:        "x",
		Color:       "#000000",
		Difficulty:  entities.DifficultyIntermediate,
		Tags:        entities.StringList(tags),
	}
}

func TestCreateRunsMatcher(t *testing.T) {
	store, repo := setupTestRepo(t)

	hooks := createTutorial(t, store, "React Hooks", "React", 45, "react", "hooks")
	createTutorial(t, store, "Docker Basics", "DevOps", 60, "docker")

	collection := newCollection("React Path", "react")
	require.NoError(t, repo.Create(collection))

	assert.Equal(t, entities.IDList{hooks.ID}, collection.TutorialIDs)
	assert.Equal(t, 45, collection.EstimatedDuration)
}

func TestCreateInvalidDifficulty(t *testing.T) {
	_, repo := setupTestRepo(t)

	collection := newCollection("Bad", "react")
	collection.Difficulty = "Legendary"
	assert.Error(t, repo.Create(collection))
}

func TestCreateColorHandling(t *testing.T) {
	_, repo := setupTestRepo(t)

	collection := newCollection("Lowercase", "react")
	collection.Color = "#6db33f"
	require.NoError(t, repo.Create(collection))
	assert.Equal(t, "#6DB33F", collection.Color)

	defaulted := newCollection("No Color", "react")
	defaulted.Color = ""
	require.NoError(t, repo.Create(defaulted))
	assert.Equal(t, utils.DefaultCollectionColor, defaulted.Color)

	invalid := newCollection("Bad Color", "react")
	invalid.Color = "green"
	assert.Error(t, repo.Create(invalid))
}

func TestUpdateDoesNotRematch(t *testing.T) {
	store, repo := setupTestRepo(t)

	createTutorial(t, store, "React Hooks", "React", 45, "react")
	collection := newCollection("React Path", "react")
	require.NoError(t, repo.Create(collection))
	originalIDs := collection.TutorialIDs

	// A later tutorial should not change the stored assignment on update.
	createTutorial(t, store, "React Router", "React", 30, "react")

	newName := "Renamed Path"
	updated, err := repo.Update(collection.ID, entities.CollectionUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Path", updated.Name)
	assert.Equal(t, originalIDs, updated.TutorialIDs)
}

func TestRematchRefreshesAssignment(t *testing.T) {
	store, repo := setupTestRepo(t)

	first := createTutorial(t, store, "React Hooks", "React", 45, "react")
	collection := newCollection("React Path", "react")
	require.NoError(t, repo.Create(collection))

	second := createTutorial(t, store, "React Router", "React", 30, "react")

	refreshed, err := repo.Rematch(collection.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.IDList{first.ID, second.ID}, refreshed.TutorialIDs)
	assert.Equal(t, 75, refreshed.EstimatedDuration)
}

func TestDeleteMovesToTrash(t *testing.T) {
	store, repo := setupTestRepo(t)

	collection := newCollection("Doomed", "react")
	require.NoError(t, repo.Create(collection))
	require.NoError(t, repo.Delete(collection.ID))

	_, err := repo.GetByID(collection.ID)
	assert.Error(t, err)

	var item entities.TrashItem
	require.NoError(t, store.DB.First(&item).Error)
	assert.Equal(t, entities.TrashTypeCollection, item.Type)
	assert.Equal(t, collection.ID, item.OriginalID)
}

func TestGetTutorialsSkipsDanglingIDs(t *testing.T) {
	store, repo := setupTestRepo(t)

	first := createTutorial(t, store, "React Hooks", "React", 45, "react")
	second := createTutorial(t, store, "React Router", "React", 30, "react")
	collection := newCollection("React Path", "react")
	require.NoError(t, repo.Create(collection))
	require.Len(t, collection.TutorialIDs, 2)

	// Hard-delete one tutorial; the stored id list is not updated.
	require.NoError(t, store.DB.Delete(&entities.Tutorial{}, first.ID).Error)

	tutorials, err := repo.GetTutorials(collection.ID)
	require.NoError(t, err)
	require.Len(t, tutorials, 1)
	assert.Equal(t, second.ID, tutorials[0].ID)
}

func TestGetAllInsertionOrder(t *testing.T) {
	_, repo := setupTestRepo(t)

	require.NoError(t, repo.Create(newCollection("First", "react")))
	require.NoError(t, repo.Create(newCollection("Second", "docker")))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)
}

func TestGetStats(t *testing.T) {
	store, repo := setupTestRepo(t)

	createTutorial(t, store, "React Hooks", "React", 45, "react")
	createTutorial(t, store, "Docker Basics", "DevOps", 60, "docker")

	require.NoError(t, repo.Create(newCollection("React Path", "react")))
	done := newCollection("DevOps Path", "docker")
	done.IsCompleted = true
	require.NoError(t, repo.Create(done))

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(105), stats.TotalDuration)
}

func TestUnavailableStore(t *testing.T) {
	store, repo := setupTestRepo(t)
	store.MarkUnavailable()

	assert.ErrorIs(t, repo.Create(newCollection("X", "react")), database.ErrStoreUnavailable)
	_, err := repo.GetAll()
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}
