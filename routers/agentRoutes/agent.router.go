package agentRoutes

import (
	agentController "architect/controllers/agent"
	"architect/middleware"
	"architect/utils"
	agentValidator "architect/validators/agent"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func SetupAgentRoutes(app *fiber.App, hub *utils.ChatHub) {
	agentGroup := app.Group("/api/v1/agent")

	agentGroup.Post("/chat", middleware.JWTMiddleware, agentValidator.Chat(), agentController.Chat)
	agentGroup.Post("/search", middleware.JWTMiddleware, agentValidator.Search(), agentController.Search)

	agentGroup.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	agentGroup.Get("/ws/:user_id", websocket.New(agentController.ChatSocket(hub)))
}
