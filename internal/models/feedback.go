package models

import (
	"time"
)

// ToolFeedback links a coping-tool effectiveness rating to a prior
// check-in. The rating range is enforced by a column check constraint,
// not in the service layer.
type ToolFeedback struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	ToolName  string    `gorm:"size:255;not null" json:"toolName"`
	Rating    int       `gorm:"not null;check:rating >= 0 AND rating <= 100" json:"rating"`
	CheckInID uint64    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CheckIn   CheckIn   `gorm:"foreignKey:CheckInID" json:"checkIn"`
}

// TableName overrides the table name for ToolFeedback
func (ToolFeedback) TableName() string {
	return "tool_feedbacks"
}
