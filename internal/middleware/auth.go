package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/types"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// UserAuth validates the session cookie, confirms the user still
// exists, and stores the owning user id in Locals("userID"). Handlers
// read that id once and pass it to services explicitly; nothing
// downstream touches request state.
func UserAuth(db *gorm.DB, jwtKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(utils.SessionCookie)
		if tokenString == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Token not found",
				Type:    "auth",
			}
		}

		claims, err := utils.ParseToken(jwtKey, tokenString)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid session token",
				Type:    "auth",
			}
		}

		var user models.User
		if err := db.Select("id", "is_guest").First(&user, claims.UserID).Error; err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "User not found",
				Type:    "auth",
			}
		}

		c.Locals("userID", user.ID)
		c.Locals("isGuest", user.IsGuest)

		return c.Next()
	}
}

// OwnerID extracts the authenticated user id set by UserAuth.
func OwnerID(c *fiber.Ctx) (uint64, bool) {
	id, ok := c.Locals("userID").(uint64)
	return id, ok
}
