package agentValidator

import (
	"strings"

	"architect/middleware"

	"github.com/gofiber/fiber/v2"
)

// ChatRequest is the validated chat payload
type ChatRequest struct {
	Message      string `json:"message"`
	CurriculumID uint   `json:"curriculum_id"`
}

// SearchRequest is the validated resource search payload
type SearchRequest struct {
	Query string `json:"query"`
}

// Chat validator middleware
func Chat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChatRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChat", reqData)
		return c.Next()
	}
}

// Search validator middleware
func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SearchRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Query) == "" {
			errors["query"] = "Query is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSearch", reqData)
		return c.Next()
	}
}
