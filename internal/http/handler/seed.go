package handler

import (
	"github.com/gofiber/fiber/v2"

	"obradiary/internal/service"
)

// InitSampleData wipes every collection and loads the demo fixtures.
// Destructive, so it can be switched off entirely via configuration.
func InitSampleData(svc service.SeedService, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return writeError(c, fiber.StatusForbidden, "SEEDING_DISABLED", "sample data seeding is disabled")
		}
		if err := svc.Initialize(c.UserContext()); err != nil {
			return respondServiceError(c, err, "sample data")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Sample data initialized successfully"})
	}
}
