package database

import (
	"encoding/json"
	"fmt"

	"github.com/ruok-app/ruok-api/data"
	"github.com/ruok-app/ruok-api/internal/config"
	"github.com/ruok-app/ruok-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedEmotions loads the embedded emotion taxonomy. Existing titles are
// left untouched, so re-running on every boot is safe.
func SeedEmotions(db *gorm.DB) error {
	var emotions []models.Emotion
	if err := json.Unmarshal(data.SeedEmotions, &emotions); err != nil {
		return fmt.Errorf("failed to parse emotion seed: %w", err)
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&emotions)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		config.Logger.Infow("seeded emotion taxonomy", "count", result.RowsAffected)
	}
	return nil
}
