package userValidator

import (
	"architect/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest carries partial profile fields; nil means not provided
type UpdateProfileRequest struct {
	LearningStyle *string   `json:"learning_style"`
	Pace          *string   `json:"pace"`
	Interests     *[]string `json:"interests"`
	Goals         *[]string `json:"goals"`
}

var validStyles = map[string]bool{
	"visual": true, "auditory": true, "kinesthetic": true, "reading_writing": true,
}

var validPaces = map[string]bool{
	"slow": true, "moderate": true, "fast": true,
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LearningStyle != nil && *reqData.LearningStyle != "" && !validStyles[*reqData.LearningStyle] {
			errors["learning_style"] = "Learning style must be one of visual, auditory, kinesthetic, reading_writing!"
		}

		if reqData.Pace != nil && *reqData.Pace != "" && !validPaces[*reqData.Pace] {
			errors["pace"] = "Pace must be one of slow, moderate, fast!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
