// Package trash provides the soft-delete holding area for tutorials and
// collections. Items carry a full JSON snapshot of the deleted entity and can
// be restored as a new live row or removed permanently.
package trash

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/entities"
)

// Repository handles all trash database operations.
type Repository struct {
	store *database.Store
}

// NewRepository creates a new trash repository.
func NewRepository(store *database.Store) *Repository {
	return &Repository{store: store}
}

// List returns all trash items, newest deletion first.
func (r *Repository) List() ([]entities.TrashItem, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}
	var items []entities.TrashItem
	err := r.store.DB.Order("deleted_at DESC, id DESC").Find(&items).Error
	return items, err
}

// Restore recreates the snapshotted entity as a new live row and removes the
// trash item. The new row gets a fresh id; the original createdAt is kept and
// updatedAt refreshed. Returns false without error when the item is unknown.
func (r *Repository) Restore(trashID uint) (bool, error) {
	if !r.store.Available() {
		return false, database.ErrStoreUnavailable
	}

	restored := false
	err := r.store.DB.Transaction(func(tx *gorm.DB) error {
		var item entities.TrashItem
		err := tx.First(&item, trashID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		switch item.Type {
		case entities.TrashTypeTutorial:
			err = restoreTutorial(tx, item)
		case entities.TrashTypeCollection:
			err = restoreCollection(tx, item)
		default:
			err = fmt.Errorf("unknown trash item type %q", item.Type)
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(&entities.TrashItem{}, trashID).Error; err != nil {
			return err
		}
		restored = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if restored {
		r.persist()
	}
	return restored, nil
}

func restoreTutorial(tx *gorm.DB, item entities.TrashItem) error {
	var tutorial entities.Tutorial
	if err := json.Unmarshal([]byte(item.Data), &tutorial); err != nil {
		return fmt.Errorf("corrupt tutorial snapshot in trash item %d: %w", item.ID, err)
	}
	tutorial.ID = 0
	tutorial.UpdatedAt = time.Now()
	return tx.Create(&tutorial).Error
}

func restoreCollection(tx *gorm.DB, item entities.TrashItem) error {
	var collection entities.TechStackCollection
	if err := json.Unmarshal([]byte(item.Data), &collection); err != nil {
		return fmt.Errorf("corrupt collection snapshot in trash item %d: %w", item.ID, err)
	}
	collection.ID = 0
	collection.UpdatedAt = time.Now()
	return tx.Create(&collection).Error
}

// PermanentDelete removes a trash item without touching live tables. Returns
// false without error when the item is unknown.
func (r *Repository) PermanentDelete(trashID uint) (bool, error) {
	if !r.store.Available() {
		return false, database.ErrStoreUnavailable
	}

	result := r.store.DB.Delete(&entities.TrashItem{}, trashID)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	r.persist()
	return true, nil
}

// Empty removes every trash item and reports how many were dropped. Calling
// it on an already empty trash is a no-op, not an error.
func (r *Repository) Empty() (int64, error) {
	if !r.store.Available() {
		return 0, database.ErrStoreUnavailable
	}

	result := r.store.DB.Where("1 = 1").Delete(&entities.TrashItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		r.persist()
	}
	return result.RowsAffected, nil
}

// PurgeOlderThan removes trash items deleted before the retention cutoff.
// Used by the scheduled auto-purge.
func (r *Repository) PurgeOlderThan(retention time.Duration) (int64, error) {
	if !r.store.Available() {
		return 0, database.ErrStoreUnavailable
	}

	cutoff := time.Now().Add(-retention)
	result := r.store.DB.Where("deleted_at < ?", cutoff).Delete(&entities.TrashItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		r.persist()
	}
	return result.RowsAffected, nil
}

func (r *Repository) persist() {
	if err := r.store.Persist(); err != nil {
		log.Printf("Failed to persist database after trash mutation: %v", err)
	}
}
