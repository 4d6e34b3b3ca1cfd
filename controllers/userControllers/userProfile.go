package userController

import (
	"log"

	"architect/database"
	"architect/middleware"
	"architect/models"
	userValidator "architect/validators/userValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// GetProfile returns the caller's learning profile
func GetProfile(c *fiber.Ctx) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("user_id = ?", ident.UserID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profile)
}

// UpdateProfile applies a partial update, creating the profile on first
// write. Only fields present in the body are touched.
func UpdateProfile(c *fiber.Ctx) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var profile models.UserProfile
	if err := db.Where("user_id = ?", ident.UserID).First(&profile).Error; err != nil {
		profile = models.UserProfile{UserID: ident.UserID}
	}

	if reqData.LearningStyle != nil {
		profile.LearningStyle = *reqData.LearningStyle
	}
	if reqData.Pace != nil {
		profile.Pace = *reqData.Pace
	}
	if reqData.Interests != nil {
		profile.Interests = datatypes.NewJSONSlice(*reqData.Interests)
	}
	if reqData.Goals != nil {
		profile.Goals = datatypes.NewJSONSlice(*reqData.Goals)
	}

	if err := db.Save(&profile).Error; err != nil {
		log.Printf("Error saving profile for user %d: %v", ident.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}
