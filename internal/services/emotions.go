package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/types"
	"gorm.io/gorm"
)

// EmotionInput is the payload for adding a taxonomy entry.
type EmotionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Intensity   int    `json:"intensity"`
}

// CreateEmotion adds a taxonomy entry. Titles are unique; duplicates
// fail with 400 like the endpoint always has.
func CreateEmotion(db *gorm.DB, in EmotionInput) (*models.Emotion, error) {
	var count int64
	if err := db.Model(&models.Emotion{}).Where("title = ?", in.Title).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "Emotion already exists",
			Type:    types.ErrTypeValidation,
		}
	}

	emotion := models.Emotion{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Intensity:   in.Intensity,
	}
	if err := db.Create(&emotion).Error; err != nil {
		return nil, err
	}
	return &emotion, nil
}

// ListEmotions returns the full taxonomy.
func ListEmotions(db *gorm.DB) ([]models.Emotion, error) {
	var emotions []models.Emotion
	if err := db.Order("id").Find(&emotions).Error; err != nil {
		return nil, err
	}
	return emotions, nil
}
