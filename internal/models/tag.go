package models

import "time"

// Tag is a globally shared hashtag (e.g. "date", "family", "brunch").
// Names are stored normalized, so uniqueness is case-insensitive.
// Tags are detached from restaurants but never deleted by restaurant edits.
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
