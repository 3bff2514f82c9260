package entities

import "time"

type TrashType string

const (
	TrashTypeTutorial   TrashType = "tutorial"
	TrashTypeCollection TrashType = "collection"
)

// TrashItem is an immutable snapshot of a deleted tutorial or collection.
// Data holds the full entity serialized as JSON at deletion time. Restoring
// creates a new live row with a fresh id and removes the trash item; the
// original id is never resurrected.
type TrashItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Type       TrashType `gorm:"index;size:20;not null" json:"type"`
	OriginalID uint      `gorm:"not null" json:"original_id"`
	Data       string    `gorm:"type:text;not null" json:"data"`
	DeletedAt  time.Time `gorm:"index;not null" json:"deleted_at"`
	DeletedBy  string    `gorm:"size:100" json:"deleted_by,omitempty"`
}

func (TrashItem) TableName() string {
	return "trash_items"
}
