package services

import (
	"encoding/json"
	"errors"

	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/types"
	"gorm.io/gorm"
)

// PostInput is the payload for creating a forum post.
type PostInput struct {
	Title   string   `json:"title"`
	Author  string   `json:"author"`
	Email   string   `json:"email"`
	Content string   `json:"content"`
	Color   string   `json:"color,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// CommentInput is the payload for commenting on a post.
type CommentInput struct {
	PostID   uint64  `json:"postId"`
	ParentID *uint64 `json:"parentId,omitempty"`
	Content  string  `json:"content"`
}

// ListPosts returns all posts, newest first.
func ListPosts(db *gorm.DB) ([]models.Post, error) {
	var posts []models.Post
	if err := db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost stores a new forum post.
func CreatePost(db *gorm.DB, in PostInput) (*models.Post, error) {
	if in.Title == "" || in.Author == "" || in.Email == "" || in.Content == "" {
		return nil, types.ValidationError("title, author, email and content are required")
	}

	tags, err := json.Marshal(in.Tags)
	if err != nil {
		return nil, err
	}

	post := models.Post{
		Title:   in.Title,
		Author:  in.Author,
		Email:   in.Email,
		Content: in.Content,
		Color:   in.Color,
		Tags:    models.JSON{JSON: tags},
	}
	if err := db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPost fetches one post and counts the view.
func GetPost(db *gorm.DB, postID uint64) (*models.Post, error) {
	var post models.Post
	if err := db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("Post not found")
		}
		return nil, err
	}

	if err := db.Model(&post).Update("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	post.Views++

	return &post, nil
}

// PostUpdate carries the editable fields of a post. Nil pointers leave
// the stored value untouched.
type PostUpdate struct {
	Title   *string  `json:"title,omitempty"`
	Content *string  `json:"content,omitempty"`
	Color   *string  `json:"color,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// UpdatePost applies the present fields to an existing post.
func UpdatePost(db *gorm.DB, postID uint64, in PostUpdate) (*models.Post, error) {
	var post models.Post
	if err := db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("Post not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, types.ValidationError("title cannot be empty")
		}
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, types.ValidationError("content cannot be empty")
		}
		updates["content"] = *in.Content
	}
	if in.Color != nil {
		updates["color"] = *in.Color
	}
	if in.Tags != nil {
		tags, err := json.Marshal(in.Tags)
		if err != nil {
			return nil, err
		}
		updates["tags"] = models.JSON{JSON: tags}
	}
	if len(updates) == 0 {
		return &post, nil
	}

	if err := db.Model(&post).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := db.First(&post, postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ToggleLikePost flips the like flag, adjusting the counter.
func ToggleLikePost(db *gorm.DB, postID uint64) (*models.Post, error) {
	var post models.Post
	if err := db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("Post not found")
		}
		return nil, err
	}

	delta := 1
	if post.IsLiked {
		delta = -1
	}
	updates := map[string]interface{}{
		"is_liked": !post.IsLiked,
		"likes":    gorm.Expr("likes + ?", delta),
	}
	if err := db.Model(&post).Updates(updates).Error; err != nil {
		return nil, err
	}
	post.IsLiked = !post.IsLiked
	post.Likes += delta

	return &post, nil
}

// ToggleBookmarkPost flips the bookmark flag.
func ToggleBookmarkPost(db *gorm.DB, postID uint64) (*models.Post, error) {
	var post models.Post
	if err := db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("Post not found")
		}
		return nil, err
	}

	if err := db.Model(&post).Update("is_bookmarked", !post.IsBookmarked).Error; err != nil {
		return nil, err
	}
	post.IsBookmarked = !post.IsBookmarked

	return &post, nil
}

// DeletePost removes a post and its comments.
func DeletePost(db *gorm.DB, postID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Post{}, postID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return types.NotFoundError("Post not found")
		}
		return tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
	})
}

// CreateComment attaches a comment to an existing post, optionally
// threaded under a parent comment.
func CreateComment(db *gorm.DB, ownerUserID uint64, in CommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, types.ValidationError("content is required")
	}

	var count int64
	if err := db.Model(&models.Post{}).Where("id = ?", in.PostID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, types.NotFoundError("Post not found")
	}

	comment := models.Comment{
		PostID:   in.PostID,
		ParentID: in.ParentID,
		UserID:   ownerUserID,
		Content:  in.Content,
		Likers:   models.JSON{JSON: []byte("[]")},
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns a post's comments, oldest first so threads read
// top down.
func ListComments(db *gorm.DB, postID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := db.Where("post_id = ?", postID).Order("created_at").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ToggleLikeComment adds or removes the user from a comment's likers.
func ToggleLikeComment(db *gorm.DB, ownerUserID, commentID uint64) (*models.Comment, error) {
	var comment models.Comment
	if err := db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("Comment not found")
		}
		return nil, err
	}

	var likers []uint64
	if len(comment.Likers.JSON) > 0 {
		if err := json.Unmarshal(comment.Likers.JSON, &likers); err != nil {
			return nil, err
		}
	}

	found := false
	next := likers[:0]
	for _, id := range likers {
		if id == ownerUserID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, ownerUserID)
	}

	encoded, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"likers": models.JSON{JSON: encoded},
		"likes":  len(next),
	}
	if err := db.Model(&comment).Updates(updates).Error; err != nil {
		return nil, err
	}
	comment.Likers = models.JSON{JSON: encoded}
	comment.Likes = len(next)

	return &comment, nil
}
