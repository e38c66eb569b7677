package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// ChatHandler handles the Sage avatar chat route.
type ChatHandler struct {
	DB      *gorm.DB
	Service *services.ChatService
}

// Chat handles POST /api/chat
// @Summary Chat with the Sage avatar
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body services.ChatRequest true "Chat message and optional client history"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "chat")
	}

	var req services.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "chat.validation.input")
	}

	messages, err := h.Service.HandleSageChat(c.Context(), userID, req)
	if err != nil {
		return respondError(c, err, "chat")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"messages": messages,
	})
}
