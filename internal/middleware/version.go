package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// ClientVersion parses the X-Client-Version header and stores it in
// context for logging and conditional behavior.
func ClientVersion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Client-Version", "1.0.0")

		if version == "1.0" {
			version = "1.0.0"
		}

		c.Locals("clientVersion", version)

		return c.Next()
	}
}
