package models

import (
	"time"
)

// The three tag kinds live in separate tables with no cross-kind
// identity. Each table enforces at most one row per (user_id, title)
// through a composite unique index, so a concurrent find-or-create for
// the same label converges on a single row.

// ActivityTag is a user-scoped activity label, stored lowercased and trimmed.
type ActivityTag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_activity_user_title,unique" json:"userId"`
	Title     string    `gorm:"size:255;not null;index:idx_activity_user_title,unique" json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlaceTag is a user-scoped place label, stored lowercased and trimmed.
type PlaceTag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_place_user_title,unique" json:"userId"`
	Title     string    `gorm:"size:255;not null;index:idx_place_user_title,unique" json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PeopleTag is a user-scoped people label, stored lowercased and trimmed.
type PeopleTag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_people_user_title,unique" json:"userId"`
	Title     string    `gorm:"size:255;not null;index:idx_people_user_title,unique" json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name for ActivityTag
func (ActivityTag) TableName() string {
	return "activity_tags"
}

// TableName overrides the table name for PlaceTag
func (PlaceTag) TableName() string {
	return "place_tags"
}

// TableName overrides the table name for PeopleTag
func (PeopleTag) TableName() string {
	return "people_tags"
}
