package middleware

import (
	"github.com/fadilmartias/placement-portal/internal/database"
	"github.com/fadilmartias/placement-portal/internal/logger"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DBSession gives each request its own lazily opened connection and always
// releases it once the handler chain returns, error or not.
func DBSession(root *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := database.NewSession(root)
		c.SetUserContext(database.WithSession(c.UserContext(), session))
		defer func() {
			if err := session.Close(); err != nil {
				logger.Warn().Err(err).Str("path", c.Path()).Msg("Failed to release DB connection")
			}
		}()
		return c.Next()
	}
}
