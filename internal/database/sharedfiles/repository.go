// Package sharedfiles provides the shared markdown file registry: uploaded
// files kept for re-download, independent of the tutorial trash lifecycle.
package sharedfiles

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/entities"
)

// DefaultUploader is recorded when no uploader name is supplied.
const DefaultUploader = "Anonymous"

// ListedFile is a registry entry joined with the parsed tutorial's title when
// the weak reference still resolves.
type ListedFile struct {
	ID               uint      `json:"id"`
	Filename         string    `json:"filename"`
	ParsedTutorialID *uint     `json:"parsed_tutorial_id,omitempty"`
	TutorialTitle    string    `json:"tutorial_title,omitempty"`
	UploadedBy       string    `json:"uploaded_by"`
	UploadedAt       time.Time `json:"uploaded_at"`
	DownloadCount    int       `json:"download_count"`
}

// Download is the payload returned when a file is downloaded.
type Download struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Repository handles all shared file database operations.
type Repository struct {
	store *database.Store
}

// NewRepository creates a new shared files repository.
func NewRepository(store *database.Store) *Repository {
	return &Repository{store: store}
}

// Register stores an uploaded markdown file. tutorialID may be nil when the
// file was not parsed into a tutorial.
func (r *Repository) Register(filename, content string, tutorialID *uint, uploadedBy string) (uint, error) {
	if !r.store.Available() {
		return 0, database.ErrStoreUnavailable
	}
	if filename == "" {
		return 0, errors.New("filename is required")
	}
	if content == "" {
		return 0, errors.New("content is required")
	}
	if uploadedBy == "" {
		uploadedBy = DefaultUploader
	}

	file := entities.SharedMarkdownFile{
		Filename:         filename,
		OriginalContent:  content,
		ParsedTutorialID: tutorialID,
		UploadedBy:       uploadedBy,
		IsActive:         true,
	}
	if err := r.store.DB.Create(&file).Error; err != nil {
		return 0, err
	}
	r.persist()
	return file.ID, nil
}

// List returns all active files, newest upload first, each joined with the
// parsed tutorial's title when the tutorial still exists.
func (r *Repository) List() ([]ListedFile, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}

	var files []ListedFile
	err := r.store.DB.Model(&entities.SharedMarkdownFile{}).
		Select("shared_markdown_files.id, shared_markdown_files.filename, shared_markdown_files.parsed_tutorial_id, shared_markdown_files.uploaded_by, shared_markdown_files.uploaded_at, shared_markdown_files.download_count, tutorials.title AS tutorial_title").
		Joins("LEFT JOIN tutorials ON tutorials.id = shared_markdown_files.parsed_tutorial_id").
		Where("shared_markdown_files.is_active = ?", true).
		Order("shared_markdown_files.uploaded_at DESC, shared_markdown_files.id DESC").
		Scan(&files).Error
	return files, err
}

// GetDownload returns the file payload and increments its download counter.
// Two downloads of the same file increment twice. Returns nil without error
// for unknown or inactive files.
func (r *Repository) GetDownload(id uint) (*Download, error) {
	if !r.store.Available() {
		return nil, database.ErrStoreUnavailable
	}

	var file entities.SharedMarkdownFile
	err := r.store.DB.Where("is_active = ?", true).First(&file, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	err = r.store.DB.Model(&file).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
	if err != nil {
		return nil, err
	}
	r.persist()

	return &Download{Filename: file.Filename, Content: file.OriginalContent}, nil
}

// Deactivate hides a file from listings and downloads without deleting it.
// Returns false without error when the file is unknown.
func (r *Repository) Deactivate(id uint) (bool, error) {
	if !r.store.Available() {
		return false, database.ErrStoreUnavailable
	}

	result := r.store.DB.Model(&entities.SharedMarkdownFile{}).
		Where("id = ? AND is_active = ?", id, true).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	r.persist()
	return true, nil
}

func (r *Repository) persist() {
	if err := r.store.Persist(); err != nil {
		log.Printf("Failed to persist database after shared file mutation: %v", err)
	}
}
