package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// ProfileHandler handles the account profile routes.
type ProfileHandler struct {
	DB *gorm.DB
}

// Get handles GET /api/profile
// @Summary Fetch the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "profile.get")
	}

	user, err := services.GetProfile(h.DB, userID)
	if err != nil {
		return respondError(c, err, "profile.get")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Fetched profile",
		"user":    user,
	})
}

// Update handles PATCH /api/profile/edit
// @Summary Update profile fields
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body object true "Fields to update (firstName, lastName, photoUrl, bio)"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /profile/edit [patch]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "profile.update")
	}

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return utils.ErrorResponse(c, "Invalid Body", fiber.StatusBadRequest, "profile.validation.body")
	}

	user, err := services.UpdateProfile(h.DB, userID, fields)
	if err != nil {
		return respondError(c, err, "profile.update")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated",
		"user":    user,
	})
}
