package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// CheckInHandler handles emotional check-in routes.
type CheckInHandler struct {
	DB *gorm.DB
}

// List handles GET /api/checkin/getAll
// @Summary List the user's check-ins
// @Tags CheckIn
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /checkin/getAll [get]
func (h *CheckInHandler) List(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "checkin.list")
	}

	checkIns, err := services.ListCheckIns(h.DB, userID)
	if err != nil {
		return respondError(c, err, "checkin.list")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched All checkIn", checkIns)
}

// Create handles POST /api/checkin/new
// @Summary Create a check-in
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param body body services.CheckInInput true "Check-in fields"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /checkin/new [post]
func (h *CheckInHandler) Create(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "checkin.create")
	}

	var in services.CheckInInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "checkin.validation.input")
	}

	checkIn, err := services.CreateCheckIn(h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "checkin.create")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Successfully created new Checkin", checkIn)
}

// Update handles PATCH /api/checkin/update/:id
// @Summary Partially update a check-in
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path int true "Check-in ID"
// @Param body body services.CheckInUpdateInput true "Fields to update"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /checkin/update/{id} [patch]
func (h *CheckInHandler) Update(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "checkin.update")
	}

	checkInID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "checkin.update")
	}

	var in services.CheckInUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "checkin.validation.input")
	}

	checkIn, err := services.UpdateCheckIn(h.DB, userID, checkInID, in)
	if err != nil {
		return respondError(c, err, "checkin.update")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":        "Checkin updated successfully",
		"updatedCheckin": checkIn,
	})
}

// Delete handles DELETE /api/checkin/delete/:id
// @Summary Delete a check-in
// @Tags CheckIn
// @Produce json
// @Param id path int true "Check-in ID"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /checkin/delete/{id} [delete]
func (h *CheckInHandler) Delete(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "checkin.delete")
	}

	checkInID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "checkin.delete")
	}

	deleted, err := services.DeleteCheckIn(h.DB, userID, checkInID)
	if err != nil {
		return respondError(c, err, "checkin.delete")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Deleted checkIn", deleted)
}
