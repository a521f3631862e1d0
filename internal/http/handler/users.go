package handler

import (
	"github.com/gofiber/fiber/v2"

	"obradiary/internal/model"
	"obradiary/internal/service"
)

// CreateUser registers a new site worker.
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.UserCreate
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		user, err := svc.Create(c.UserContext(), &payload)
		if err != nil {
			return respondServiceError(c, err, "user")
		}
		return c.Status(fiber.StatusOK).JSON(user)
	}
}

// ListUsers returns all registered users, newest first.
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err, "user")
		}
		return c.Status(fiber.StatusOK).JSON(users)
	}
}

// GetUser looks up a single user by id.
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondServiceError(c, err, "user")
		}
		return c.Status(fiber.StatusOK).JSON(user)
	}
}
