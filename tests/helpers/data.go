package helpers

import (
	"testing"

	"github.com/ruok-app/ruok-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateTestUser inserts a user with a bcrypt hash of the password and
// returns its id.
func CreateTestUser(t *testing.T, db *gorm.DB, email, password string) uint64 {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		PhotoURL:     models.DefaultPhotoURL,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user.ID
}

// CreateTestTherapist inserts a user with the therapist role.
func CreateTestTherapist(t *testing.T, db *gorm.DB, email, specialization string) uint64 {
	t.Helper()
	therapist := models.User{
		FirstName:      "Dr",
		LastName:       "Therapist",
		Email:          email,
		Role:           models.RoleTherapist,
		Specialization: specialization,
	}
	if err := db.Create(&therapist).Error; err != nil {
		t.Fatalf("Failed to create therapist: %v", err)
	}
	return therapist.ID
}

// CreateTestEmotion inserts a taxonomy entry and returns its id.
func CreateTestEmotion(t *testing.T, db *gorm.DB, title, emotionType string, intensity int) uint64 {
	t.Helper()
	emotion := models.Emotion{
		Title:       title,
		Description: title + " description",
		Type:        emotionType,
		Intensity:   intensity,
	}
	if err := db.Create(&emotion).Error; err != nil {
		t.Fatalf("Failed to create emotion: %v", err)
	}
	return emotion.ID
}

// CreateTestCheckIn inserts a bare check-in without tags.
func CreateTestCheckIn(t *testing.T, db *gorm.DB, userID, emotionID uint64, description string) uint64 {
	t.Helper()
	checkIn := models.CheckIn{
		UserID:      userID,
		EmotionID:   emotionID,
		Description: description,
	}
	if err := db.Create(&checkIn).Error; err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}
	return checkIn.ID
}
