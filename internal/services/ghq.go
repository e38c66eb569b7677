package services

import (
	"time"

	"github.com/ruok-app/ruok-api/internal/models"
	"gorm.io/gorm"
)

// SubmitGHQ stores a screening form entry, stamping the submission
// time when the client didn't.
func SubmitGHQ(db *gorm.DB, entry *models.GHQEntry) error {
	if entry.SubmissionDate.IsZero() {
		entry.SubmissionDate = time.Now().UTC()
	}
	return db.Create(entry).Error
}

// ListGHQ returns all submitted entries.
func ListGHQ(db *gorm.DB) ([]models.GHQEntry, error) {
	var entries []models.GHQEntry
	if err := db.Order("submission_date DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
