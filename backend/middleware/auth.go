package middleware

import (
	"github.com/gofiber/fiber/v2"

	"codeprep/backend/config"
	"codeprep/backend/utils"
)

// AuthMiddleware rejects requests without a valid token and stores the
// token's email claim in locals under "email".
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := utils.ExtractEmailFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals("email", email)
		return c.Next()
	}
}
