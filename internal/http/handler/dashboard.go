package handler

import (
	"github.com/gofiber/fiber/v2"

	"obradiary/internal/service"
)

// DashboardStats returns the per-obra record counts.
func DashboardStats(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext(), c.Params("obra_id"))
		if err != nil {
			return respondServiceError(c, err, "dashboard")
		}
		return c.Status(fiber.StatusOK).JSON(stats)
	}
}
