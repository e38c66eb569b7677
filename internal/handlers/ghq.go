package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// GHQHandler handles the wellbeing screening questionnaire routes.
type GHQHandler struct {
	DB *gorm.DB
}

// Submit handles POST /api/ghq/new
// @Summary Submit a screening questionnaire entry
// @Tags GHQ
// @Accept json
// @Produce json
// @Param body body models.GHQEntry true "Questionnaire answers"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /ghq/new [post]
func (h *GHQHandler) Submit(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "ghq.submit")
	}

	var entry models.GHQEntry
	if err := c.BodyParser(&entry); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "ghq.validation.input")
	}
	entry.UserID = userID

	if err := services.SubmitGHQ(h.DB, &entry); err != nil {
		return respondError(c, err, "ghq.submit")
	}

	return utils.DataResponse(c, fiber.StatusOK, "GHQ entry recorded", entry)
}

// List handles GET /api/ghq/getAll
// @Summary List screening questionnaire entries
// @Tags GHQ
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /ghq/getAll [get]
func (h *GHQHandler) List(c *fiber.Ctx) error {
	entries, err := services.ListGHQ(h.DB)
	if err != nil {
		return respondError(c, err, "ghq.list")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched GHQ entries", entries)
}
