package handler

import (
	"github.com/gofiber/fiber/v2"

	"obradiary/internal/service"
)

// ListNotifications returns the notifications for one obra, newest first.
func ListNotifications(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ns, err := svc.ListByObra(c.UserContext(), c.Params("obra_id"))
		if err != nil {
			return respondServiceError(c, err, "notification")
		}
		return c.Status(fiber.StatusOK).JSON(ns)
	}
}

// MarkNotificationRead flags a notification as read. Idempotent; unknown
// ids succeed.
func MarkNotificationRead(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.MarkRead(c.UserContext(), c.Params("id")); err != nil {
			return respondServiceError(c, err, "notification")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification marked as read"})
	}
}
