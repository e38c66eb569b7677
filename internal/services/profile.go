package services

import (
	"errors"

	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/types"
	"gorm.io/gorm"
)

// Fields a user may edit on their own profile. Everything else in the
// request body fails validation.
var allowedProfileFields = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"photoUrl":  "photo_url",
	"bio":       "bio",
}

// GetProfile returns the user's own record. The password hash is never
// serialized.
func GetProfile(db *gorm.DB, userID uint64) (*models.User, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies an edit restricted to the allowed field set.
func UpdateProfile(db *gorm.DB, userID uint64, fields map[string]interface{}) (*models.User, error) {
	if len(fields) == 0 {
		return nil, types.ValidationError("Invalid Body")
	}

	updates := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		column, ok := allowedProfileFields[key]
		if !ok {
			return nil, types.ValidationError("Invalid Edit Fields")
		}
		updates[column] = value
	}

	if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return nil, err
	}

	return GetProfile(db, userID)
}
