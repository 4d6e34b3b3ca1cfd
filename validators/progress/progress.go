package progressValidator

import (
	"strconv"

	"architect/middleware"
	curriculumModels "architect/models/curriculum"

	"github.com/gofiber/fiber/v2"
)

// UpdateRequest is the validated progress update payload
type UpdateRequest struct {
	ResourceID uint   `json:"resource_id"`
	Status     string `json:"status"`
}

// Update validator middleware. Rejects unrecognized statuses before the
// update ever reaches the database.
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ResourceID < 1 {
			errors["resource_id"] = "Resource id is required!"
		}

		if !curriculumModels.IsValidStatus(reqData.Status) {
			errors["status"] = "Status must be one of pending, in_progress, completed, skipped!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// Recent validates the limit query parameter, defaulting to 5
func Recent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 5
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Limit must be greater than 0!", nil)
			}
			limit = parsed
		}

		c.Locals("recentLimit", limit)
		return c.Next()
	}
}
