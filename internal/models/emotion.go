package models

import (
	"time"
)

// Emotion quadrant types (energy x pleasantness).
const (
	EmotionHighEnergyUnpleasant = "High Energy Unpleasant"
	EmotionLowEnergyUnpleasant  = "Low Energy Unpleasant"
	EmotionHighEnergyPleasant   = "High Energy Pleasant"
	EmotionLowEnergyPleasant    = "Low Energy Pleasant"
)

// Emotion is a fixed taxonomy entry. Rows are reference data shared by
// all users; titles are canonical and matched case-sensitively.
type Emotion struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"uniqueIndex;size:255;not null" json:"title"`
	Description string    `gorm:"size:1024;not null" json:"description"`
	Type        string    `gorm:"size:64;not null" json:"type"`
	Intensity   int       `gorm:"not null" json:"intensity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Emotion
func (Emotion) TableName() string {
	return "emotions"
}
