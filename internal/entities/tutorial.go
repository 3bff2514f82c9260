package entities

import (
	"time"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ValidDifficulty reports whether s is one of the three known levels.
func ValidDifficulty(s string) bool {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type Tutorial struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:512;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Category    string     `gorm:"index;size:100;not null" json:"category"`
	Difficulty  Difficulty `gorm:"index;size:20;not null" json:"difficulty"`
	Duration    int        `gorm:"not null" json:"duration"` // minutes
	Tags        StringList `gorm:"type:text;not null" json:"tags"`
	Content     string     `gorm:"type:text" json:"content"`
	IsCompleted bool       `gorm:"index;default:false" json:"is_completed"`
	IsFavorite  bool       `gorm:"index;default:false" json:"is_favorite"`

	// Markdown provenance, set when the tutorial was imported from a file.
	// OriginalMarkdownContent must be present whenever
	// IsImportedFromMarkdown is true.
	OriginalFileName        string `gorm:"size:512" json:"original_file_name,omitempty"`
	OriginalMarkdownContent string `gorm:"type:text" json:"original_markdown_content,omitempty"`
	IsImportedFromMarkdown  bool   `gorm:"index;default:false" json:"is_imported_from_markdown"`
	IsSharedMarkdown        bool   `gorm:"index;default:false" json:"is_shared_markdown"`
	UploadedBy              string `gorm:"size:100" json:"uploaded_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tutorial) TableName() string {
	return "tutorials"
}

// TutorialUpdate is a partial update: only non-nil fields are applied.
// ID and CreatedAt are never updatable; UpdatedAt is always refreshed by the
// repository.
type TutorialUpdate struct {
	Title                   *string     `json:"title,omitempty"`
	Description             *string     `json:"description,omitempty"`
	Category                *string     `json:"category,omitempty"`
	Difficulty              *Difficulty `json:"difficulty,omitempty"`
	Duration                *int        `json:"duration,omitempty"`
	Tags                    *StringList `json:"tags,omitempty"`
	Content                 *string     `json:"content,omitempty"`
	IsCompleted             *bool       `json:"is_completed,omitempty"`
	IsFavorite              *bool       `json:"is_favorite,omitempty"`
	OriginalFileName        *string     `json:"original_file_name,omitempty"`
	OriginalMarkdownContent *string     `json:"original_markdown_content,omitempty"`
	IsImportedFromMarkdown  *bool       `json:"is_imported_from_markdown,omitempty"`
	IsSharedMarkdown        *bool       `json:"is_shared_markdown,omitempty"`
	UploadedBy              *string     `json:"uploaded_by,omitempty"`
}

// Changes returns the column assignments for the supplied fields.
func (u TutorialUpdate) Changes() map[string]any {
	changes := make(map[string]any)
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.Category != nil {
		changes["category"] = *u.Category
	}
	if u.Difficulty != nil {
		changes["difficulty"] = *u.Difficulty
	}
	if u.Duration != nil {
		changes["duration"] = *u.Duration
	}
	if u.Tags != nil {
		changes["tags"] = *u.Tags
	}
	if u.Content != nil {
		changes["content"] = *u.Content
	}
	if u.IsCompleted != nil {
		changes["is_completed"] = *u.IsCompleted
	}
	if u.IsFavorite != nil {
		changes["is_favorite"] = *u.IsFavorite
	}
	if u.OriginalFileName != nil {
		changes["original_file_name"] = *u.OriginalFileName
	}
	if u.OriginalMarkdownContent != nil {
		changes["original_markdown_content"] = *u.OriginalMarkdownContent
	}
	if u.IsImportedFromMarkdown != nil {
		changes["is_imported_from_markdown"] = *u.IsImportedFromMarkdown
	}
	if u.IsSharedMarkdown != nil {
		changes["is_shared_markdown"] = *u.IsSharedMarkdown
	}
	if u.UploadedBy != nil {
		changes["uploaded_by"] = *u.UploadedBy
	}
	return changes
}
