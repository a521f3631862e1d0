package handler

import (
	"github.com/gofiber/fiber/v2"

	"obradiary/internal/model"
	"obradiary/internal/service"
)

// CreateObra registers a new construction site.
func CreateObra(svc service.ObraService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.ObraCreate
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		obra, err := svc.Create(c.UserContext(), &payload)
		if err != nil {
			return respondServiceError(c, err, "obra")
		}
		return c.Status(fiber.StatusOK).JSON(obra)
	}
}

// ListObras returns all registered sites, newest first.
func ListObras(svc service.ObraService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		obras, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err, "obra")
		}
		return c.Status(fiber.StatusOK).JSON(obras)
	}
}

// GetObra looks up a single site by id.
func GetObra(svc service.ObraService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		obra, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondServiceError(c, err, "obra")
		}
		return c.Status(fiber.StatusOK).JSON(obra)
	}
}
