package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeonck/tutoria/internal/entities"
)

func TestAllTutorialsAreValid(t *testing.T) {
	tutorials := AllTutorials()
	require.NotEmpty(t, tutorials)

	seen := map[string]bool{}
	for _, tut := range tutorials {
		assert.NotEmpty(t, tut.Title)
		assert.NotEmpty(t, tut.Category)
		assert.True(t, entities.ValidDifficulty(string(tut.Difficulty)), "tutorial %q has difficulty %q", tut.Title, tut.Difficulty)
		assert.Greater(t, tut.Duration, 0, "tutorial %q has no duration", tut.Title)
		assert.NotEmpty(t, tut.Tags, "tutorial %q has no tags", tut.Title)
		assert.False(t, seen[tut.Title], "duplicate tutorial title %q", tut.Title)
		seen[tut.Title] = true
	}
}

func TestCategoriesCoverAllTutorials(t *testing.T) {
	total := 0
	for _, tutorials := range Categories() {
		total += len(tutorials)
	}
	assert.Equal(t, len(AllTutorials()), total)
}

func TestDefaultCollectionsStartUnmatched(t *testing.T) {
	collections := DefaultCollections()
	require.NotEmpty(t, collections)

	for _, c := range collections {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Tags, "collection %q has no tags", c.Name)
		assert.Empty(t, c.TutorialIDs, "collection %q should start with no tutorials", c.Name)
		assert.Zero(t, c.EstimatedDuration, "collection %q should start with zero duration", c.Name)
	}
}

func TestCatalogStats(t *testing.T) {
	stats := CatalogStats()
	assert.Equal(t, len(AllTutorials()), stats.TutorialCount)
	assert.Equal(t, len(DefaultCollections()), stats.CollectionCount)
	assert.Greater(t, stats.TotalDuration, 0)
}
