package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// EmotionHandler handles the emotion taxonomy routes.
type EmotionHandler struct {
	DB *gorm.DB
}

// List handles GET /api/emotion/getAll
// @Summary List the emotion taxonomy
// @Tags Emotion
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /emotion/getAll [get]
func (h *EmotionHandler) List(c *fiber.Ctx) error {
	emotions, err := services.ListEmotions(h.DB)
	if err != nil {
		return respondError(c, err, "emotion.list")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched all emotions", emotions)
}

// Create handles POST /api/emotion/new
// @Summary Add an emotion to the taxonomy
// @Tags Emotion
// @Accept json
// @Produce json
// @Param body body services.EmotionInput true "Emotion fields"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /emotion/new [post]
func (h *EmotionHandler) Create(c *fiber.Ctx) error {
	var in services.EmotionInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "emotion.validation.input")
	}

	emotion, err := services.CreateEmotion(h.DB, in)
	if err != nil {
		return respondError(c, err, "emotion.create")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Emotion created", emotion)
}
