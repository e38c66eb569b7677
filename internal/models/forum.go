package models

import (
	"time"
)

// Post is a forum post. Tags and comment bodies carry free-form JSON so
// the column type stays portable across the supported dialects.
type Post struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"size:512;not null" json:"title"`
	Author       string    `gorm:"size:255;not null" json:"author"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Likes        int       `gorm:"not null;default:0" json:"likes"`
	Views        int       `gorm:"not null;default:0" json:"views"`
	IsLiked      bool      `gorm:"not null;default:false" json:"isLiked"`
	IsBookmarked bool      `gorm:"not null;default:false" json:"isBookmarked"`
	Color        string    `gorm:"size:128;default:bg-gradient-to-t from-red-900" json:"color"`
	Tags         JSON      `gorm:"type:json" json:"tags"`
	CreatedAt    time.Time `json:"timestamp"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Comment is a forum comment, optionally threaded under a parent
// comment. Likers holds the ids of users who liked it.
type Comment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"not null;index" json:"postId"`
	ParentID  *uint64   `json:"parentId,omitempty"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	Likers    JSON      `gorm:"type:json" json:"likers"`
	CreatedAt time.Time `json:"timestamp"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Post
func (Post) TableName() string {
	return "posts"
}

// TableName overrides the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
