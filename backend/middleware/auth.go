package middleware

import (
	"edubridge/backend/config"
	"edubridge/backend/session"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware requires a valid token belonging to the active session.
// A token issued for a session that has since been replaced or logged out is
// rejected.
func AuthMiddleware(sessions *session.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		user, ok := sessions.Current()
		if !ok || user.ID != userID {
			return utils.Unauthorized(c, "No active session")
		}

		return c.Next()
	}
}
