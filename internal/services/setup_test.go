package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/ruok-app/ruok-api/internal/models"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Emotion{},
		&models.ActivityTag{},
		&models.PlaceTag{},
		&models.PeopleTag{},
		&models.CheckIn{},
		&models.ToolFeedback{},
		&models.Booking{},
		&models.GHQEntry{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) uint64 {
	t.Helper()
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Role:      models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user.ID
}

func seedTherapist(t *testing.T, db *gorm.DB, email string) uint64 {
	t.Helper()
	therapist := models.User{
		FirstName:      "Dr",
		LastName:       "Therapist",
		Email:          email,
		Role:           models.RoleTherapist,
		Specialization: "Anxiety",
	}
	if err := db.Create(&therapist).Error; err != nil {
		t.Fatalf("Failed to create therapist: %v", err)
	}
	return therapist.ID
}

func seedEmotion(t *testing.T, db *gorm.DB, title string) uint64 {
	t.Helper()
	emotion := models.Emotion{
		Title:       title,
		Description: title + " description",
		Type:        models.EmotionLowEnergyPleasant,
		Intensity:   4,
	}
	if err := db.Create(&emotion).Error; err != nil {
		t.Fatalf("Failed to create emotion: %v", err)
	}
	return emotion.ID
}
