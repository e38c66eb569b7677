package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// FeedbackHandler handles wellness tool feedback routes.
type FeedbackHandler struct {
	DB *gorm.DB
}

// Create handles POST /api/feedback/new
// @Summary Record feedback for a wellness tool
// @Tags Feedback
// @Accept json
// @Produce json
// @Param body body services.FeedbackInput true "Feedback fields"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /feedback/new [post]
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "feedback.create")
	}

	var in services.FeedbackInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "feedback.validation.input")
	}

	feedback, err := services.CreateFeedback(h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "feedback.create")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Feedback recorded", feedback)
}

// List handles GET /api/feedback/getAll
// @Summary List the user's tool feedback entries
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /feedback/getAll [get]
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "feedback.list")
	}

	entries, err := services.ListFeedback(h.DB, userID)
	if err != nil {
		return respondError(c, err, "feedback.list")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched all feedback", entries)
}
