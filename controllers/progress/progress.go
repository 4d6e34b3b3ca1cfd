package progressController

import (
	"log"

	"architect/database"
	"architect/middleware"
	"architect/models"
	curriculumModels "architect/models/curriculum"
	"architect/utils"
	progressValidator "architect/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// Update overwrites a resource's status. The resource must belong to one of
// the caller's curricula; a resource owned by someone else answers exactly
// like a missing one. Any valid status can replace any other, including
// moving completed work back to pending.
func Update(c *fiber.Ctx) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*progressValidator.UpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var resource curriculumModels.Resource
	err := db.
		Joins("JOIN curriculum_modules ON curriculum_modules.id = learning_resources.module_id").
		Joins("JOIN curriculums ON curriculums.id = curriculum_modules.curriculum_id").
		Where("learning_resources.id = ? AND curriculums.user_id = ?", reqData.ResourceID, ident.UserID).
		First(&resource).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found or access denied!", nil)
	}

	// Last write wins; concurrent updates race at the storage layer
	if err := db.Model(&resource).Update("status", reqData.Status).Error; err != nil {
		log.Printf("Error updating resource %d status: %v", resource.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", nil)
}

// Summary returns the caller's aggregate progress
func Summary(c *fiber.Ctx) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	summary := utils.BuildProgressSummary(db, ident.UserID)

	var profile models.UserProfile
	if err := db.Where("user_id = ?", ident.UserID).First(&profile).Error; err == nil {
		summary.LearningStyle = profile.LearningStyle
		summary.Pace = profile.Pace
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress summary fetched successfully!", summary)
}

// Recent returns the most recently updated completed or in-progress
// resources
func Recent(c *fiber.Ctx) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	limit := c.Locals("recentLimit").(int)
	items := utils.RecentProgress(database.Database.Db, ident.UserID, limit)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recent progress fetched successfully!", items)
}
