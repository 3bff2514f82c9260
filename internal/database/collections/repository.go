// Package collections provides database operations for tech stack
// collections. New collections get their tutorial list and estimated
// duration assigned by the matcher at creation time; those fields are stored,
// not recomputed on read.
package collections

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/entities"
	"github.com/jeonck/tutoria/internal/matching"
	"github.com/jeonck/tutoria/internal/utils"
)

// Stats aggregates collection counts and the summed stored duration.
type Stats struct {
	Total         int64 `json:"total"`
	Completed     int64 `json:"completed"`
	TotalDuration int64 `json:"total_duration"` // minutes, from stored estimates
}

// Repository handles all collection database operations.
type Repository struct {
	store *database.Store
}

// NewRepository creates a new collections repository.
func NewRepository(store *database.Store) *Repository {
	return &Repository{store: store}
}

// Create inserts a collection after running the matcher over the current
// tutorials to fill TutorialIDs and EstimatedDuration.
func (r *Repository) Create(collection *entities.TechStackCollection) error {
	if !r.store.Available() {
		return database.ErrStoreUnavailable
	}
	if !entities.ValidDifficulty(string(collection.Difficulty)) {
		return fmt.Errorf("invalid difficulty %q", collection.Difficulty)
	}
	collection.Color = utils.NormalizeHexColor(collection.Color)
	if !utils.ValidHexColor(collection.Color) {
		return fmt.Errorf("invalid color %q", collection.Color)
	}

	var tutorials []entities.Tutorial
	if err := r.store.DB.Order("id ASC").Find(&tutorials).Error; err != nil {
		return err
	}
	matched := matching.MatchTutorialsToCollection(*collection, tutorials)
	collection.TutorialIDs = matching.TutorialIDs(matched)
	collection.EstimatedDuration = matching.EstimatedDuration(matched)

	if err := r.store.DB.Create(collection).Error; err != nil {
		return err
	}
	r.persist()
	return nil
}

// Update applies the supplied fields and returns the refreshed collection.
// TutorialIDs supplied explicitly are stored as-is; the matcher does not run
// on update.
func (r *Repository) Update(id uint, update entities.CollectionUpdate) (*entities.TechStackCollection, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}
	if update.Difficulty != nil && !entities.ValidDifficulty(string(*update.Difficulty)) {
		return nil, fmt.Errorf("invalid difficulty %q", *update.Difficulty)
	}
	if update.Color != nil {
		normalized := utils.NormalizeHexColor(*update.Color)
		if !utils.ValidHexColor(normalized) {
			return nil, fmt.Errorf("invalid color %q", *update.Color)
		}
		*update.Color = normalized
	}

	var collection entities.TechStackCollection
	if err := r.store.DB.First(&collection, id).Error; err != nil {
		return nil, err
	}

	changes := update.Changes()
	if len(changes) > 0 {
		if err := r.store.DB.Model(&collection).Updates(changes).Error; err != nil {
			return nil, err
		}
		r.persist()
	}

	if err := r.store.DB.First(&collection, id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

// Delete moves the collection into trash, snapshotting the full row first.
func (r *Repository) Delete(id uint) error {
	if !r.store.Available() {
		return database.ErrStoreUnavailable
	}

	err := r.store.DB.Transaction(func(tx *gorm.DB) error {
		var collection entities.TechStackCollection
		if err := tx.First(&collection, id).Error; err != nil {
			return err
		}

		snapshot, err := json.Marshal(collection)
		if err != nil {
			return fmt.Errorf("failed to snapshot collection %d: %w", id, err)
		}

		item := entities.TrashItem{
			Type:       entities.TrashTypeCollection,
			OriginalID: collection.ID,
			Data:       string(snapshot),
			DeletedAt:  time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.TechStackCollection{}, id).Error
	})
	if err != nil {
		return err
	}

	r.persist()
	return nil
}

// GetByID retrieves a single collection.
func (r *Repository) GetByID(id uint) (*entities.TechStackCollection, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}
	var collection entities.TechStackCollection
	if err := r.store.DB.First(&collection, id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

// GetAll retrieves every collection in insertion order.
func (r *Repository) GetAll() ([]entities.TechStackCollection, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}
	var collections []entities.TechStackCollection
	err := r.store.DB.Order("id ASC").Find(&collections).Error
	return collections, err
}

// GetTutorials resolves a collection's tutorial ids to live tutorials,
// preserving the stored id order. Ids that no longer resolve are skipped.
func (r *Repository) GetTutorials(id uint) ([]entities.Tutorial, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}

	collection, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if len(collection.TutorialIDs) == 0 {
		return []entities.Tutorial{}, nil
	}

	var tutorials []entities.Tutorial
	if err := r.store.DB.Where("id IN ?", []uint(collection.TutorialIDs)).Find(&tutorials).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]entities.Tutorial, len(tutorials))
	for _, t := range tutorials {
		byID[t.ID] = t
	}
	ordered := make([]entities.Tutorial, 0, len(tutorials))
	for _, tid := range collection.TutorialIDs {
		if t, ok := byID[tid]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}

// GetStats aggregates over the stored estimated durations; it does not
// recompute matches.
func (r *Repository) GetStats() (*Stats, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}

	var stats Stats
	if err := r.store.DB.Model(&entities.TechStackCollection{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.store.DB.Model(&entities.TechStackCollection{}).Where("is_completed = ?", true).Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	err := r.store.DB.Model(&entities.TechStackCollection{}).
		Select("COALESCE(SUM(estimated_duration), 0)").
		Scan(&stats.TotalDuration).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Rematch reruns the matcher for one collection against the current
// tutorials and stores the refreshed assignment.
func (r *Repository) Rematch(id uint) (*entities.TechStackCollection, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}

	collection, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	var tutorials []entities.Tutorial
	if err := r.store.DB.Order("id ASC").Find(&tutorials).Error; err != nil {
		return nil, err
	}
	matched := matching.MatchTutorialsToCollection(*collection, tutorials)
	ids := matching.TutorialIDs(matched)
	duration := matching.EstimatedDuration(matched)

	err = r.store.DB.Model(collection).Updates(map[string]any{
		"tutorial_ids":       ids,
		"estimated_duration": duration,
	}).Error
	if err != nil {
		return nil, err
	}
	r.persist()

	return r.GetByID(id)
}

func (r *Repository) persist() {
	if err := r.store.Persist(); err != nil {
		log.Printf("Failed to persist database after collection mutation: %v", err)
	}
}
