package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/middleware"
	"github.com/ruok-app/ruok-api/internal/types"
	"github.com/ruok-app/ruok-api/internal/utils"
)

// ownerID extracts the authenticated user id placed by the auth
// middleware. Every service call receives it explicitly.
func ownerID(c *fiber.Ctx) (uint64, error) {
	id, ok := middleware.OwnerID(c)
	if !ok {
		return 0, &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "user not found in context",
			Type:    "auth",
		}
	}
	return id, nil
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, types.ValidationError("Invalid " + name)
	}
	return id, nil
}

// respondError maps a service error onto the response envelope,
// collapsing everything unclassified into a generic internal error.
func respondError(c *fiber.Ctx, err error, errorType string) error {
	if ce, ok := types.AsCustomError(err); ok {
		switch ce.Code {
		case fiber.StatusNotFound:
			return utils.NotFoundResponse(c, ce.Message)
		case fiber.StatusConflict:
			return utils.ConflictResponse(c, ce.Message)
		default:
			return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
		}
	}
	return utils.ErrorResponse(c, "Internal Server Error", fiber.StatusInternalServerError, errorType)
}
