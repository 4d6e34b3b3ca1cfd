package userRoutes

import (
	userController "architect/controllers/userControllers"
	"architect/middleware"
	userValidator "architect/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	profileGroup := app.Group("/api/v1/users/me")

	profileGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	profileGroup.Put("/profile", middleware.JWTMiddleware, userValidator.UpdateProfile(), userController.UpdateProfile)
}
