package models

import (
	"time"
)

// GHQEntry is a submitted General Health Questionnaire screening form.
type GHQEntry struct {
	ID                      uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                  uint64    `gorm:"not null;index" json:"userId"`
	FullName                string    `gorm:"size:255;not null" json:"fullName"`
	Age                     int       `gorm:"not null" json:"age"`
	Gender                  string    `gorm:"size:16;not null" json:"gender"`
	MaritalStatus           string    `gorm:"size:16;not null" json:"maritalStatus"`
	Occupation              string    `gorm:"size:255" json:"occupation,omitempty"`
	FeelingUnwell           bool      `gorm:"not null" json:"feelingUnwell"`
	SleepProblems           bool      `gorm:"not null" json:"sleepProblems"`
	LostInterest            bool      `gorm:"not null" json:"lostInterest"`
	FeelingDown             bool      `gorm:"not null" json:"feelingDown"`
	ConcentrationDifficulty bool      `gorm:"not null" json:"concentrationDifficulty"`
	OtherConcerns           string    `gorm:"size:2048" json:"otherConcerns,omitempty"`
	SubmissionDate          time.Time `gorm:"not null" json:"submissionDate"`
}

// TableName overrides the table name for GHQEntry
func (GHQEntry) TableName() string {
	return "ghq_entries"
}
