// Package tutorials provides database operations for tutorials, including
// filtered listing, partial updates, soft deletion into trash, and stats
// aggregation. All mutating operations persist the database snapshot before
// returning; persist failures are logged but do not roll back the mutation.
package tutorials

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/database/sharedfiles"
	"github.com/jeonck/tutoria/internal/entities"
)

// ListFilter narrows List results. Zero values mean "no constraint"; all set
// filters combine with AND.
type ListFilter struct {
	Search        string
	Category      string
	Difficulty    string
	FavoritesOnly bool
	CompletedOnly bool
	Page          int
	PageSize      int
}

// ListResult is one page of tutorials.
type ListResult struct {
	Items   []entities.Tutorial `json:"items"`
	Total   int64               `json:"total"`
	HasMore bool                `json:"has_more"`
}

// Stats aggregates over all tutorials.
type Stats struct {
	Total         int64 `json:"total"`
	Completed     int64 `json:"completed"`
	Favorites     int64 `json:"favorites"`
	TotalDuration int64 `json:"total_duration"`
}

// Repository handles all tutorial database operations.
type Repository struct {
	store *database.Store
}

// NewRepository creates a new tutorials repository.
func NewRepository(store *database.Store) *Repository {
	return &Repository{store: store}
}

// Create inserts a tutorial. When the tutorial is a shared markdown upload
// (IsSharedMarkdown with original content and filename), a shared file
// registry entry is created in the same transaction, weakly referencing the
// new tutorial id.
func (r *Repository) Create(tutorial *entities.Tutorial) error {
	if !r.store.Available() {
		return database.ErrStoreUnavailable
	}
	if !entities.ValidDifficulty(string(tutorial.Difficulty)) {
		return fmt.Errorf("invalid difficulty %q", tutorial.Difficulty)
	}
	if tutorial.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %d", tutorial.Duration)
	}
	if tutorial.IsImportedFromMarkdown && tutorial.OriginalMarkdownContent == "" {
		return errors.New("imported tutorial is missing its original markdown content")
	}

	err := r.store.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tutorial).Error; err != nil {
			return err
		}
		if tutorial.IsSharedMarkdown && tutorial.OriginalMarkdownContent != "" && tutorial.OriginalFileName != "" {
			uploader := tutorial.UploadedBy
			if uploader == "" {
				uploader = sharedfiles.DefaultUploader
			}
			shared := entities.SharedMarkdownFile{
				Filename:         tutorial.OriginalFileName,
				OriginalContent:  tutorial.OriginalMarkdownContent,
				ParsedTutorialID: &tutorial.ID,
				UploadedBy:       uploader,
				IsActive:         true,
			}
			if err := tx.Create(&shared).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.persist()
	return nil
}

// Update applies the supplied fields and returns the refreshed tutorial.
func (r *Repository) Update(id uint, update entities.TutorialUpdate) (*entities.Tutorial, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}
	if update.Difficulty != nil && !entities.ValidDifficulty(string(*update.Difficulty)) {
		return nil, fmt.Errorf("invalid difficulty %q", *update.Difficulty)
	}

	var tutorial entities.Tutorial
	if err := r.store.DB.First(&tutorial, id).Error; err != nil {
		return nil, err
	}

	changes := update.Changes()
	if len(changes) > 0 {
		if err := r.store.DB.Model(&tutorial).Updates(changes).Error; err != nil {
			return nil, err
		}
		r.persist()
	}

	if err := r.store.DB.First(&tutorial, id).Error; err != nil {
		return nil, err
	}
	return &tutorial, nil
}

// Delete moves the tutorial into trash: the full row is snapshotted into a
// trash item and the live row removed, in one transaction. If the snapshot
// cannot be captured the live row stays untouched.
func (r *Repository) Delete(id uint) error {
	if !r.store.Available() {
		return database.ErrStoreUnavailable
	}

	err := r.store.DB.Transaction(func(tx *gorm.DB) error {
		var tutorial entities.Tutorial
		if err := tx.First(&tutorial, id).Error; err != nil {
			return err
		}

		snapshot, err := json.Marshal(tutorial)
		if err != nil {
			return fmt.Errorf("failed to snapshot tutorial %d: %w", id, err)
		}

		item := entities.TrashItem{
			Type:       entities.TrashTypeTutorial,
			OriginalID: tutorial.ID,
			Data:       string(snapshot),
			DeletedAt:  time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Tutorial{}, id).Error
	})
	if err != nil {
		return err
	}

	r.persist()
	return nil
}

// GetByID retrieves a single tutorial.
func (r *Repository) GetByID(id uint) (*entities.Tutorial, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}
	var tutorial entities.Tutorial
	if err := r.store.DB.First(&tutorial, id).Error; err != nil {
		return nil, err
	}
	return &tutorial, nil
}

// GetAll retrieves every tutorial, newest first.
func (r *Repository) GetAll() ([]entities.Tutorial, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}
	var tutorials []entities.Tutorial
	err := r.store.DB.Order("created_at DESC, id DESC").Find(&tutorials).Error
	return tutorials, err
}

// List returns one page of tutorials matching the filter, newest first.
// Pages are 1-indexed.
func (r *Repository) List(filter ListFilter) (*ListResult, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}

	var total int64
	if err := r.applyFilter(r.store.DB.Model(&entities.Tutorial{}), filter).Count(&total).Error; err != nil {
		return nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	var items []entities.Tutorial
	err := r.applyFilter(r.store.DB.Model(&entities.Tutorial{}), filter).
		Order("created_at DESC, id DESC").
		Limit(pageSize).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Items:   items,
		Total:   total,
		HasMore: int64(offset+len(items)) < total,
	}, nil
}

func (r *Repository) applyFilter(query *gorm.DB, filter ListFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		// Tags are matched against the serialized text column, a plain
		// substring match rather than per-tag comparison.
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(tags) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.FavoritesOnly {
		query = query.Where("is_favorite = ?", true)
	}
	if filter.CompletedOnly {
		query = query.Where("is_completed = ?", true)
	}
	return query
}

// GetStats aggregates totals over all tutorials.
func (r *Repository) GetStats() (*Stats, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}

	var stats Stats
	if err := r.store.DB.Model(&entities.Tutorial{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.store.DB.Model(&entities.Tutorial{}).
		Where("is_completed = ?", true).Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	if err := r.store.DB.Model(&entities.Tutorial{}).
		Where("is_favorite = ?", true).Count(&stats.Favorites).Error; err != nil {
		return nil, err
	}
	err := r.store.DB.Model(&entities.Tutorial{}).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&stats.TotalDuration).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetCategories returns the distinct categories in alphabetical order.
func (r *Repository) GetCategories() ([]string, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}
	var categories []string
	err := r.store.DB.Model(&entities.Tutorial{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// persist writes the snapshot after a mutation. Failures leave the durable
// copy stale until the next successful persist.
func (r *Repository) persist() {
	if err := r.store.Persist(); err != nil {
		log.Printf("Failed to persist database after tutorial mutation: %v", err)
	}
}
