package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/jeonck/tutoria/internal/entities"
	"github.com/jeonck/tutoria/internal/matching"
	"github.com/jeonck/tutoria/internal/seed"
)

// SchemaVersion is bumped whenever the schema changes in a way that requires
// a full rebuild from the seed catalog. Version 6 introduced shared markdown
// storage.
const SchemaVersion = 6

const seedBatchSize = 50

// markdownColumns were added after the initial release; databases built
// before them are patched in place instead of rebuilt.
var markdownColumns = []string{
	"original_file_name",
	"original_markdown_content",
	"is_imported_from_markdown",
	"is_shared_markdown",
	"uploaded_by",
}

var requiredTables = []string{
	entities.Tutorial{}.TableName(),
	entities.TechStackCollection{}.TableName(),
	entities.TrashItem{}.TableName(),
	entities.SharedMarkdownFile{}.TableName(),
}

// EnsureSchema brings the store to the current schema version. An existing
// snapshot is kept when its version matches and its data is intact; missing
// markdown columns or the shared files table are patched in place. Anything
// else triggers a full rebuild from the seed catalog.
func EnsureSchema(store *Store) error {
	if !store.Available() {
		return ErrStoreUnavailable
	}

	if store.Version() != SchemaVersion {
		log.Printf("Schema version mismatch (have %d, want %d), rebuilding", store.Version(), SchemaVersion)
		return Rebuild(store)
	}

	patched, err := patchSchema(store.DB)
	if err != nil {
		log.Printf("Schema patch failed, rebuilding: %v", err)
		return Rebuild(store)
	}

	if !hasRequiredTables(store.DB) {
		log.Printf("Required tables missing, rebuilding")
		return Rebuild(store)
	}
	if !seedDataIntact(store.DB) {
		log.Printf("Seed data below expected counts, rebuilding")
		return Rebuild(store)
	}

	if patched {
		if err := store.Persist(); err != nil {
			return fmt.Errorf("failed to persist patched schema: %w", err)
		}
	}
	return nil
}

// patchSchema applies additive migrations to an existing database: the
// markdown provenance columns on tutorials and the shared markdown files
// table. It reports whether anything changed.
func patchSchema(db *gorm.DB) (bool, error) {
	migrator := db.Migrator()
	if !migrator.HasTable(&entities.Tutorial{}) {
		return false, nil
	}

	patched := false
	for _, column := range markdownColumns {
		if migrator.HasColumn(&entities.Tutorial{}, column) {
			continue
		}
		log.Printf("Adding tutorials column %s", column)
		if err := migrator.AddColumn(&entities.Tutorial{}, column); err != nil {
			return patched, fmt.Errorf("failed to add column %s: %w", column, err)
		}
		patched = true
	}

	if !migrator.HasTable(&entities.SharedMarkdownFile{}) {
		log.Printf("Creating shared markdown files table")
		if err := db.AutoMigrate(&entities.SharedMarkdownFile{}); err != nil {
			return patched, fmt.Errorf("failed to create shared files table: %w", err)
		}
		patched = true
	}
	return patched, nil
}

func hasRequiredTables(db *gorm.DB) bool {
	migrator := db.Migrator()
	for _, table := range requiredTables {
		if !migrator.HasTable(table) {
			return false
		}
	}
	return true
}

// seedDataIntact checks that the database still holds at least as many
// tutorials and collections as the seed catalog provides. Fewer rows means a
// truncated or partially written snapshot.
func seedDataIntact(db *gorm.DB) bool {
	var tutorialCount, collectionCount int64
	if err := db.Model(&entities.Tutorial{}).Count(&tutorialCount).Error; err != nil {
		return false
	}
	if err := db.Model(&entities.TechStackCollection{}).Count(&collectionCount).Error; err != nil {
		return false
	}
	return tutorialCount >= int64(len(seed.AllTutorials())) &&
		collectionCount >= int64(len(seed.DefaultCollections()))
}

// Rebuild drops everything and recreates the schema from the seed catalog:
// tutorials first, then collections with tutorial ids assigned by the
// matcher. The version marker and snapshot are written on success.
func Rebuild(store *Store) error {
	if !store.Available() {
		return ErrStoreUnavailable
	}
	db := store.DB

	migrator := db.Migrator()
	for _, table := range requiredTables {
		if migrator.HasTable(table) {
			if err := migrator.DropTable(table); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
		}
	}

	if err := db.AutoMigrate(
		&entities.Tutorial{},
		&entities.TechStackCollection{},
		&entities.TrashItem{},
		&entities.SharedMarkdownFile{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		tutorials := seed.AllTutorials()
		if err := tx.CreateInBatches(tutorials, seedBatchSize).Error; err != nil {
			return fmt.Errorf("failed to seed tutorials: %w", err)
		}

		// Re-read to get the assigned ids before matching.
		var stored []entities.Tutorial
		if err := tx.Order("id ASC").Find(&stored).Error; err != nil {
			return fmt.Errorf("failed to read seeded tutorials: %w", err)
		}

		collections := matching.ApplyMatches(seed.DefaultCollections(), stored)
		if err := tx.CreateInBatches(collections, seedBatchSize).Error; err != nil {
			return fmt.Errorf("failed to seed collections: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := store.WriteVersion(SchemaVersion); err != nil {
		return fmt.Errorf("failed to write version marker: %w", err)
	}
	if err := store.Persist(); err != nil {
		return fmt.Errorf("failed to persist rebuilt database: %w", err)
	}

	log.Printf("Database rebuilt: %d tutorials, %d collections (schema v%d)",
		len(seed.AllTutorials()), len(seed.DefaultCollections()), SchemaVersion)
	return nil
}
