package entities

import "time"

// TechStackCollection is a curated grouping of tutorials matched by tag and
// category heuristics. TutorialIDs may reference tutorials that no longer
// exist; the list and EstimatedDuration are computed at assignment time and
// are not recomputed on read.
type TechStackCollection struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Name              string     `gorm:"size:256;not null" json:"name"`
	Description       string     `gorm:"type:text;not null" json:"description"`
	Icon              string     `gorm:"size:16;not null" json:"icon"`
	Color             string     `gorm:"size:20;not null" json:"color"`
	TutorialIDs       IDList     `gorm:"type:text;not null" json:"tutorial_ids"`
	EstimatedDuration int        `gorm:"not null" json:"estimated_duration"` // minutes
	Difficulty        Difficulty `gorm:"size:20;not null" json:"difficulty"`
	Tags              StringList `gorm:"type:text;not null" json:"tags"`
	IsCompleted       bool       `gorm:"default:false" json:"is_completed"`
	IsFavorite        bool       `gorm:"default:false" json:"is_favorite"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (TechStackCollection) TableName() string {
	return "tech_stack_collections"
}

// CollectionUpdate is a partial update; only non-nil fields are applied.
type CollectionUpdate struct {
	Name              *string     `json:"name,omitempty"`
	Description       *string     `json:"description,omitempty"`
	Icon              *string     `json:"icon,omitempty"`
	Color             *string     `json:"color,omitempty"`
	TutorialIDs       *IDList     `json:"tutorial_ids,omitempty"`
	EstimatedDuration *int        `json:"estimated_duration,omitempty"`
	Difficulty        *Difficulty `json:"difficulty,omitempty"`
	Tags              *StringList `json:"tags,omitempty"`
	IsCompleted       *bool       `json:"is_completed,omitempty"`
	IsFavorite        *bool       `json:"is_favorite,omitempty"`
}

func (u CollectionUpdate) Changes() map[string]any {
	changes := make(map[string]any)
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.Icon != nil {
		changes["icon"] = *u.Icon
	}
	if u.Color != nil {
		changes["color"] = *u.Color
	}
	if u.TutorialIDs != nil {
		changes["tutorial_ids"] = *u.TutorialIDs
	}
	if u.EstimatedDuration != nil {
		changes["estimated_duration"] = *u.EstimatedDuration
	}
	if u.Difficulty != nil {
		changes["difficulty"] = *u.Difficulty
	}
	if u.Tags != nil {
		changes["tags"] = *u.Tags
	}
	if u.IsCompleted != nil {
		changes["is_completed"] = *u.IsCompleted
	}
	if u.IsFavorite != nil {
		changes["is_favorite"] = *u.IsFavorite
	}
	return changes
}
