package curriculumValidator

import (
	"strconv"
	"strings"

	"architect/middleware"

	"github.com/gofiber/fiber/v2"
)

// GenerateRequest is the validated curriculum generation payload
type GenerateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Generate validator middleware
func Generate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GenerateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCurriculum", reqData)
		return c.Next()
	}
}

// CurriculumID validates the :id path parameter
func CurriculumID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid curriculum id!", nil)
		}

		c.Locals("curriculumID", uint(id))
		return c.Next()
	}
}
