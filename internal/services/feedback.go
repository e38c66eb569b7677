package services

import (
	"errors"

	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/types"
	"gorm.io/gorm"
)

// FeedbackInput is the payload for recording a tool-effectiveness
// rating against a prior check-in.
type FeedbackInput struct {
	ToolName  string `json:"toolName"`
	Rating    int    `json:"rating"`
	CheckInID uint64 `json:"checkIn"`
}

// CreateFeedback persists a rating linked to an existing check-in. Only
// existence of the check-in id is verified, not its ownership.
func CreateFeedback(db *gorm.DB, ownerUserID uint64, in FeedbackInput) (*models.ToolFeedback, error) {
	var count int64
	if err := db.Model(&models.CheckIn{}).Where("id = ?", in.CheckInID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, types.NotFoundError("Invalid Checkin Id")
	}

	feedback := models.ToolFeedback{
		UserID:    ownerUserID,
		ToolName:  in.ToolName,
		Rating:    in.Rating,
		CheckInID: in.CheckInID,
	}
	if err := db.Create(&feedback).Error; err != nil {
		return nil, err
	}

	return loadFeedbackView(db, feedback.ID)
}

// ListFeedback returns all feedback owned by the user, each with its
// check-in and the check-in's emotion/tags expanded.
func ListFeedback(db *gorm.DB, ownerUserID uint64) ([]models.ToolFeedback, error) {
	var feedbacks []models.ToolFeedback
	err := feedbackProjection(db).
		Where("user_id = ?", ownerUserID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// loadFeedbackView expands a single feedback row for display.
func loadFeedbackView(db *gorm.DB, feedbackID uint64) (*models.ToolFeedback, error) {
	var feedback models.ToolFeedback
	err := feedbackProjection(db).First(&feedback, feedbackID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("Feedback not found")
		}
		return nil, err
	}
	return &feedback, nil
}

// feedbackProjection preloads the nested check-in view.
func feedbackProjection(db *gorm.DB) *gorm.DB {
	return db.Preload("CheckIn").
		Preload("CheckIn.Emotion").
		Preload("CheckIn.ActivityTag").
		Preload("CheckIn.PlaceTag").
		Preload("CheckIn.PeopleTag")
}
