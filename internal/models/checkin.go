package models

import (
	"time"
)

// CheckIn records an emotional state at a point in time, optionally
// tagged with activity/place/people context. Tag references stay null
// when no label was supplied. Deleting a check-in never cascades to its
// tags.
type CheckIn struct {
	ID            uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint64       `gorm:"not null;index" json:"userId"`
	EmotionID     uint64       `gorm:"not null" json:"-"`
	Description   string       `gorm:"size:2048" json:"description,omitempty"`
	ActivityTagID *uint64      `json:"-"`
	PlaceTagID    *uint64      `json:"-"`
	PeopleTagID   *uint64      `json:"-"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	Emotion       Emotion      `gorm:"foreignKey:EmotionID" json:"emotion"`
	ActivityTag   *ActivityTag `gorm:"foreignKey:ActivityTagID" json:"activityTag"`
	PlaceTag      *PlaceTag    `gorm:"foreignKey:PlaceTagID" json:"placeTag"`
	PeopleTag     *PeopleTag   `gorm:"foreignKey:PeopleTagID" json:"peopleTag"`
}

// TableName overrides the table name for CheckIn
func (CheckIn) TableName() string {
	return "check_ins"
}
