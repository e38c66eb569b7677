package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// BookingHandler handles therapist listing, availability, and
// appointment booking routes.
type BookingHandler struct {
	DB *gorm.DB
}

// ListTherapists handles GET /api/therapists
// @Summary List registered therapists
// @Tags Booking
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /therapists [get]
func (h *BookingHandler) ListTherapists(c *fiber.Ctx) error {
	therapists, err := services.ListTherapists(h.DB)
	if err != nil {
		return respondError(c, err, "booking.therapists")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched therapists", therapists)
}

// Availability handles GET /api/therapists/:therapistId/availability
// @Summary Get open slots for a therapist on a given day
// @Tags Booking
// @Produce json
// @Param therapistId path int true "Therapist ID"
// @Param date query string true "Day, formatted YYYY-MM-DD"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /therapists/{therapistId}/availability [get]
func (h *BookingHandler) Availability(c *fiber.Ctx) error {
	therapistID, err := parseIDParam(c, "therapistId")
	if err != nil {
		return respondError(c, err, "booking.availability")
	}

	slots, err := services.GetAvailability(h.DB, therapistID, c.Query("date"))
	if err != nil {
		return respondError(c, err, "booking.availability")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":        "Fetched availability",
		"availableSlots": slots,
	})
}

// Create handles POST /api/bookings
// @Summary Book an appointment slot
// @Tags Booking
// @Accept json
// @Produce json
// @Param body body services.BookingInput true "Booking fields"
// @Success 201 {object} utils.DataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "booking.create")
	}

	var in services.BookingInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "booking.validation.input")
	}

	booking, err := services.CreateBooking(h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "booking.create")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully!",
		"booking": booking,
	})
}

// Cancel handles PATCH /api/bookings/:id/cancel
// @Summary Cancel one of the user's bookings
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /bookings/{id}/cancel [patch]
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "booking.cancel")
	}

	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err, "booking.cancel")
	}

	booking, err := services.CancelBooking(h.DB, userID, bookingID)
	if err != nil {
		return respondError(c, err, "booking.cancel")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Booking cancelled", booking)
}

// ListMine handles GET /api/bookings
// @Summary List the user's bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "booking.list")
	}

	bookings, err := services.ListUserBookings(h.DB, userID)
	if err != nil {
		return respondError(c, err, "booking.list")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched bookings", bookings)
}
