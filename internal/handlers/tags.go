package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// TagHandler handles the per-user tag vocabulary routes.
type TagHandler struct {
	DB *gorm.DB
}

// ListActivity handles GET /api/tags/activity
// @Summary List the user's activity tags
// @Tags Tags
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /tags/activity [get]
func (h *TagHandler) ListActivity(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "tags.activity")
	}

	tags, err := services.ListActivityTags(h.DB, userID)
	if err != nil {
		return respondError(c, err, "tags.activity")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched activity tags", tags)
}

// ListPlace handles GET /api/tags/place
// @Summary List the user's place tags
// @Tags Tags
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /tags/place [get]
func (h *TagHandler) ListPlace(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "tags.place")
	}

	tags, err := services.ListPlaceTags(h.DB, userID)
	if err != nil {
		return respondError(c, err, "tags.place")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched place tags", tags)
}

// ListPeople handles GET /api/tags/people
// @Summary List the user's people tags
// @Tags Tags
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /tags/people [get]
func (h *TagHandler) ListPeople(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "tags.people")
	}

	tags, err := services.ListPeopleTags(h.DB, userID)
	if err != nil {
		return respondError(c, err, "tags.people")
	}

	return utils.DataResponse(c, fiber.StatusOK, "Fetched people tags", tags)
}
