package progressRoutes

import (
	progressController "architect/controllers/progress"
	"architect/middleware"
	progressValidator "architect/validators/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/api/v1/progress")

	progressGroup.Post("/update", middleware.JWTMiddleware, progressValidator.Update(), progressController.Update)
	progressGroup.Get("/summary", middleware.JWTMiddleware, progressController.Summary)
	progressGroup.Get("/recent", middleware.JWTMiddleware, progressValidator.Recent(), progressController.Recent)
}
