package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"obradiary/internal/model"
	"obradiary/internal/service"
)

// bearerCredential pulls the raw token out of an Authorization header.
// Missing or malformed headers yield "", which the auth resolver rejects.
func bearerCredential(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// CreateDiaryEntry records a daily log entry attributed to the caller.
func CreateDiaryEntry(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.DiaryEntryCreate
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		entry, err := svc.CreateDiaryEntry(c.UserContext(), bearerCredential(c), &payload)
		if err != nil {
			return respondServiceError(c, err, "diary entry")
		}
		return c.Status(fiber.StatusOK).JSON(entry)
	}
}

// ListDiaryEntries returns the entries for one obra, newest first.
func ListDiaryEntries(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := svc.ListDiaryEntries(c.UserContext(), c.Params("obra_id"))
		if err != nil {
			return respondServiceError(c, err, "diary entry")
		}
		return c.Status(fiber.StatusOK).JSON(entries)
	}
}

// CreatePhoto records photo metadata attributed to the caller.
func CreatePhoto(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.PhotoCreate
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		photo, err := svc.CreatePhoto(c.UserContext(), bearerCredential(c), &payload)
		if err != nil {
			return respondServiceError(c, err, "photo")
		}
		return c.Status(fiber.StatusOK).JSON(photo)
	}
}

// ListPhotos returns the photos for one obra, newest first.
func ListPhotos(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := svc.ListPhotos(c.UserContext(), c.Params("obra_id"))
		if err != nil {
			return respondServiceError(c, err, "photo")
		}
		return c.Status(fiber.StatusOK).JSON(photos)
	}
}

// CreateMaterialRequest records a material request attributed to the caller.
func CreateMaterialRequest(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.MaterialRequestCreate
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		req, err := svc.CreateMaterialRequest(c.UserContext(), bearerCredential(c), &payload)
		if err != nil {
			return respondServiceError(c, err, "material request")
		}
		return c.Status(fiber.StatusOK).JSON(req)
	}
}

// ListMaterialRequests returns the requests for one obra, newest first.
func ListMaterialRequests(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqs, err := svc.ListMaterialRequests(c.UserContext(), c.Params("obra_id"))
		if err != nil {
			return respondServiceError(c, err, "material request")
		}
		return c.Status(fiber.StatusOK).JSON(reqs)
	}
}

// UpdateMaterialRequestStatus sets a request's status. The new value comes
// from a JSON body or, when no body is sent, the status query parameter.
// The update is idempotent and does not report unknown ids.
func UpdateMaterialRequestStatus(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := c.Query("status")
		if len(c.Body()) > 0 {
			var payload struct {
				Status string `json:"status"`
			}
			if err := c.BodyParser(&payload); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
			}
			if payload.Status != "" {
				status = payload.Status
			}
		}
		if err := svc.UpdateMaterialRequestStatus(c.UserContext(), c.Params("id"), status); err != nil {
			return respondServiceError(c, err, "material request")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Status updated successfully"})
	}
}

// CreateMeasurement records a service measurement attributed to the caller.
func CreateMeasurement(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.ServiceMeasurementCreate
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		m, err := svc.CreateMeasurement(c.UserContext(), bearerCredential(c), &payload)
		if err != nil {
			return respondServiceError(c, err, "service measurement")
		}
		return c.Status(fiber.StatusOK).JSON(m)
	}
}

// ListMeasurements returns the measurements for one obra, newest first.
func ListMeasurements(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ms, err := svc.ListMeasurements(c.UserContext(), c.Params("obra_id"))
		if err != nil {
			return respondServiceError(c, err, "service measurement")
		}
		return c.Status(fiber.StatusOK).JSON(ms)
	}
}
