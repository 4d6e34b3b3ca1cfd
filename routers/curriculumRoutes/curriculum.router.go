package curriculumRoutes

import (
	curriculumController "architect/controllers/curriculum"
	"architect/middleware"
	curriculumValidator "architect/validators/curriculum"

	"github.com/gofiber/fiber/v2"
)

func SetupCurriculumRoutes(app *fiber.App) {
	curriculumGroup := app.Group("/api/v1/curriculum")

	curriculumGroup.Post("/generate", middleware.JWTMiddleware, curriculumValidator.Generate(), curriculumController.Generate)
	curriculumGroup.Get("/", middleware.JWTMiddleware, curriculumController.List)
	curriculumGroup.Get("/:id", middleware.JWTMiddleware, curriculumValidator.CurriculumID(), curriculumController.Get)
	curriculumGroup.Delete("/:id", middleware.JWTMiddleware, curriculumValidator.CurriculumID(), curriculumController.Delete)
}
