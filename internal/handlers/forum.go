package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// ForumHandler handles the community forum routes.
type ForumHandler struct {
	DB *gorm.DB
}

// ListPosts handles GET /api/forum/posts
// @Summary List forum posts
// @Tags Forum
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /forum/posts [get]
func (h *ForumHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := services.ListPosts(h.DB)
	if err != nil {
		return respondError(c, err, "forum.posts.list")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched posts", posts)
}

// CreatePost handles POST /api/forum/posts
// @Summary Create a forum post
// @Tags Forum
// @Accept json
// @Produce json
// @Param body body services.PostInput true "Post fields"
// @Success 201 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /forum/posts [post]
func (h *ForumHandler) CreatePost(c *fiber.Ctx) error {
	var in services.PostInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "forum.validation.input")
	}

	post, err := services.CreatePost(h.DB, in)
	if err != nil {
		return respondError(c, err, "forum.posts.create")
	}

	return utils.DataResponse(c, fiber.StatusCreated, "Post created", post)
}

// GetPost handles GET /api/forum/posts/:id
// @Summary Fetch one post and count the view
// @Tags Forum
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /forum/posts/{id} [get]
func (h *ForumHandler) GetPost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "forum.posts.get")
	}

	post, err := services.GetPost(h.DB, postID)
	if err != nil {
		return respondError(c, err, "forum.posts.get")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched post", post)
}

// UpdatePost handles PATCH /api/forum/posts/:id
// @Summary Edit a post
// @Tags Forum
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /forum/posts/{id} [patch]
func (h *ForumHandler) UpdatePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "forum.posts.update")
	}

	var in services.PostUpdate
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "forum.validation.input")
	}

	post, err := services.UpdatePost(h.DB, postID, in)
	if err != nil {
		return respondError(c, err, "forum.posts.update")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Post updated", post)
}

// ToggleLike handles PATCH /api/forum/posts/:id/like
// @Summary Toggle the like flag on a post
// @Tags Forum
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /forum/posts/{id}/like [patch]
func (h *ForumHandler) ToggleLike(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "forum.posts.like")
	}

	post, err := services.ToggleLikePost(h.DB, postID)
	if err != nil {
		return respondError(c, err, "forum.posts.like")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Post like toggled", post)
}

// ToggleBookmark handles PATCH /api/forum/posts/:id/bookmark
// @Summary Toggle the bookmark flag on a post
// @Tags Forum
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /forum/posts/{id}/bookmark [patch]
func (h *ForumHandler) ToggleBookmark(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "forum.posts.bookmark")
	}

	post, err := services.ToggleBookmarkPost(h.DB, postID)
	if err != nil {
		return respondError(c, err, "forum.posts.bookmark")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Post bookmark toggled", post)
}

// DeletePost handles DELETE /api/forum/posts/:id
// @Summary Delete a post and its comments
// @Tags Forum
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /forum/posts/{id} [delete]
func (h *ForumHandler) DeletePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "forum.posts.delete")
	}

	if err := services.DeletePost(h.DB, postID); err != nil {
		return respondError(c, err, "forum.posts.delete")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Post deleted", nil)
}

// CreateComment handles POST /api/forum/comments
// @Summary Comment on a post
// @Tags Forum
// @Accept json
// @Produce json
// @Param body body services.CommentInput true "Comment fields"
// @Success 201 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /forum/comments [post]
func (h *ForumHandler) CreateComment(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "forum.comments.create")
	}

	var in services.CommentInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "forum.validation.input")
	}

	comment, err := services.CreateComment(h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "forum.comments.create")
	}

	return utils.DataResponse(c, fiber.StatusCreated, "Comment created", comment)
}

// ListComments handles GET /api/forum/posts/:id/comments
// @Summary List a post's comments
// @Tags Forum
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /forum/posts/{id}/comments [get]
func (h *ForumHandler) ListComments(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "forum.comments.list")
	}

	comments, err := services.ListComments(h.DB, postID)
	if err != nil {
		return respondError(c, err, "forum.comments.list")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched comments", comments)
}

// ToggleCommentLike handles PATCH /api/forum/comments/:id/like
// @Summary Toggle the caller's like on a comment
// @Tags Forum
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /forum/comments/{id}/like [patch]
func (h *ForumHandler) ToggleCommentLike(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "forum.comments.like")
	}

	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "forum.comments.like")
	}

	comment, err := services.ToggleLikeComment(h.DB, userID, commentID)
	if err != nil {
		return respondError(c, err, "forum.comments.like")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Comment like toggled", comment)
}
