package entities

import "time"

// SharedMarkdownFile is an uploaded markdown file kept for re-download.
// ParsedTutorialID is a weak reference: deleting the tutorial leaves it
// dangling, which is acceptable. Shared files never pass through trash.
type SharedMarkdownFile struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Filename         string    `gorm:"size:512;not null" json:"filename"`
	OriginalContent  string    `gorm:"type:text;not null" json:"original_content"`
	ParsedTutorialID *uint     `gorm:"index" json:"parsed_tutorial_id,omitempty"`
	UploadedBy       string    `gorm:"size:100" json:"uploaded_by"`
	UploadedAt       time.Time `gorm:"index;not null;autoCreateTime" json:"uploaded_at"`
	DownloadCount    int       `gorm:"default:0" json:"download_count"`
	IsActive         bool      `gorm:"index;default:true" json:"is_active"`
}

func (SharedMarkdownFile) TableName() string {
	return "shared_markdown_files"
}
