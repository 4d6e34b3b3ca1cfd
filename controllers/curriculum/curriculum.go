package curriculumController

import (
	"log"

	"architect/database"
	"architect/middleware"
	curriculumModels "architect/models/curriculum"
	"architect/utils"
	curriculumValidator "architect/validators/curriculum"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ModuleWithResources is a module plus its ordered resources
type ModuleWithResources struct {
	curriculumModels.Module
	Resources []curriculumModels.Resource `json:"resources"`
}

// Generate asks the AI agent for a personalized curriculum and returns the
// persisted result with its modules and resources
func Generate(c *fiber.Ctx) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCurriculum").(*curriculumValidator.GenerateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	generated, err := utils.GenerateCurriculum(ident.UserID, reqData.Title, reqData.Description)
	if err != nil {
		log.Printf("Error generating curriculum for user %d: %v", ident.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Curriculum generated successfully!", fiber.Map{
		"curriculum": generated,
		"modules":    loadModules(database.Database.Db, generated.ID),
	})
}

// List returns all curricula owned by the caller
func List(c *fiber.Ctx) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var curriculums []curriculumModels.Curriculum
	if err := database.Database.Db.Where("user_id = ?", ident.UserID).Find(&curriculums).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch curriculums!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Curriculums fetched successfully!", curriculums)
}

// Get returns one curriculum with modules and resources. A curriculum that
// does not exist and one owned by another user answer identically, so ids
// cannot be probed.
func Get(c *fiber.Ctx) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	curriculumID := c.Locals("curriculumID").(uint)
	db := database.Database.Db

	var cur curriculumModels.Curriculum
	if err := db.Where("id = ? AND user_id = ?", curriculumID, ident.UserID).First(&cur).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Curriculum not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Curriculum fetched successfully!", fiber.Map{
		"curriculum": cur,
		"modules":    loadModules(db, cur.ID),
	})
}

// Delete removes a curriculum along with its modules and resources in one
// transaction. Ownership is checked with the same dual not-found rule as Get.
func Delete(c *fiber.Ctx) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	curriculumID := c.Locals("curriculumID").(uint)
	db := database.Database.Db

	var cur curriculumModels.Curriculum
	if err := db.Where("id = ? AND user_id = ?", curriculumID, ident.UserID).First(&cur).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Curriculum not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id IN (?)",
			tx.Model(&curriculumModels.Module{}).Select("id").Where("curriculum_id = ?", cur.ID),
		).Delete(&curriculumModels.Resource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("curriculum_id = ?", cur.ID).Delete(&curriculumModels.Module{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cur).Error
	})
	if err != nil {
		log.Printf("Error deleting curriculum %d: %v", cur.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete curriculum!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Curriculum deleted successfully!", nil)
}

func loadModules(db *gorm.DB, curriculumID uint) []ModuleWithResources {
	var modules []curriculumModels.Module
	db.Where("curriculum_id = ?", curriculumID).Order("order_index asc").Find(&modules)

	result := make([]ModuleWithResources, len(modules))
	for i, module := range modules {
		result[i] = ModuleWithResources{Module: module}
		db.Where("module_id = ?", module.ID).Order("order_index asc").Find(&result[i].Resources)
		if result[i].Resources == nil {
			result[i].Resources = []curriculumModels.Resource{}
		}
	}

	return result
}
