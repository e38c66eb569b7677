package models

import (
	"time"
)

// Role values for User.Role.
const (
	RoleUser      = "user"
	RoleTherapist = "therapist"
)

// DefaultPhotoURL is assigned to accounts created without an avatar.
const DefaultPhotoURL = "https://ui-private.shadcn.com/avatars/02.png"

// User represents an account: a student, a guest, or a therapist.
// PasswordHash is empty for Google-authenticated accounts.
type User struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string    `gorm:"size:255;not null" json:"firstName"`
	LastName       string    `gorm:"size:255" json:"lastName,omitempty"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Bio            string    `gorm:"size:1024" json:"bio,omitempty"`
	PhotoURL       string    `gorm:"size:512" json:"photoUrl,omitempty"`
	PasswordHash   string    `gorm:"size:255" json:"-"`
	Role           string    `gorm:"size:32;not null;default:user" json:"role"`
	Specialization string    `gorm:"size:255" json:"specialization,omitempty"`
	IsGuest        bool      `gorm:"not null;default:false" json:"isGuest"`
	IsGoogleAuth   bool      `gorm:"not null;default:false" json:"isGoogleAuth"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
