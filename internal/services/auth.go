package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/types"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// Session lifetimes. Guests get a shorter leash.
const (
	SessionTTL      = 24 * time.Hour
	GuestSessionTTL = time.Hour
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SignupInput is the payload for password signup.
type SignupInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	PhotoURL  string `json:"photoURL,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginInput is the payload for password login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validateSignup mirrors the request-schema checks: name length, email
// shape, password length. Failures surface as 411, the status the API
// has always used for body validation on the auth routes.
func validateSignup(in SignupInput) error {
	if l := len(strings.TrimSpace(in.FirstName)); l < 2 || l > 30 {
		return authValidationError("firstName must be between 2 and 30 characters")
	}
	if in.LastName != "" {
		if l := len(in.LastName); l < 2 || l > 30 {
			return authValidationError("lastName must be between 2 and 30 characters")
		}
	}
	if !emailPattern.MatchString(in.Email) {
		return authValidationError("email must be a valid email")
	}
	if len(in.Password) < 6 {
		return authValidationError("password must be at least 6 characters")
	}
	return nil
}

func authValidationError(message string) *types.CustomError {
	return &types.CustomError{
		Code:    fiber.StatusLengthRequired,
		Message: message,
		Type:    types.ErrTypeValidation,
	}
}

// Signup creates a password account. A duplicate email fails with 403,
// indistinguishable from the login failure status on purpose.
func Signup(db *gorm.DB, in SignupInput) (*models.User, error) {
	if err := validateSignup(in); err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "User already exists",
			Type:    types.ErrTypeConflict,
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     in.LastName,
		Email:        in.Email,
		PhotoURL:     firstNonEmpty(in.PhotoURL, models.DefaultPhotoURL),
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Login authenticates a password account. Unknown email and wrong
// password fail identically.
func Login(db *gorm.DB, in LoginInput) (*models.User, error) {
	if !emailPattern.MatchString(in.Email) || len(in.Password) < 6 {
		return nil, authValidationError("email and password are required")
	}

	invalid := &types.CustomError{
		Code:    fiber.StatusForbidden,
		Message: "Invalid Credentials",
		Type:    "auth",
	}

	var user models.User
	if err := db.Where("email = ?", in.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, invalid
	}

	return &user, nil
}

// GoogleLogin verifies a Google ID token and finds or creates the
// matching account.
func GoogleLogin(ctx context.Context, db *gorm.DB, clientID, credential string) (*models.User, error) {
	payload, err := idtoken.Validate(ctx, credential, clientID)
	if err != nil {
		return nil, &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Invalid Google token",
			Type:    "auth",
		}
	}

	email, _ := payload.Claims["email"].(string)
	givenName, _ := payload.Claims["given_name"].(string)
	familyName, _ := payload.Claims["family_name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	if email == "" {
		return nil, &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Invalid Google token",
			Type:    "auth",
		}
	}

	var user models.User
	err = db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			FirstName:    givenName,
			LastName:     familyName,
			Email:        email,
			PhotoURL:     firstNonEmpty(picture, models.DefaultPhotoURL),
			Role:         models.RoleUser,
			IsGoogleAuth: true,
		}
		if createErr := db.Create(&user).Error; createErr != nil {
			return nil, createErr
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GuestLogin creates a disposable account. Guests are removed by the
// daily sweep, and their sessions expire after an hour.
func GuestLogin(db *gorm.DB) (*models.User, error) {
	guestID := fmt.Sprintf("guest_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])

	hash, err := bcrypt.GenerateFromPassword([]byte(guestID), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	guest := models.User{
		FirstName:    "Guest",
		LastName:     "User",
		Email:        guestID + "@guest.temp",
		Bio:          "Guest user account",
		PhotoURL:     models.DefaultPhotoURL,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		IsGuest:      true,
	}
	if err := db.Create(&guest).Error; err != nil {
		return nil, err
	}

	return &guest, nil
}

// DeleteUser removes the account outright. Used by guest self-deletion.
func DeleteUser(db *gorm.DB, userID uint64) error {
	result := db.Delete(&models.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return types.NotFoundError("Invalid Credentials")
	}
	return nil
}

// SweepGuests deletes all guest accounts and reports how many went.
func SweepGuests(db *gorm.DB) (int64, error) {
	result := db.Where("is_guest = ?", true).Delete(&models.User{})
	return result.RowsAffected, result.Error
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
