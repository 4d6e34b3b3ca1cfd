package main

import (
	"log"

	"architect/config"
	"architect/database"
	agentRoutes "architect/routers/agentRoutes"
	authRoutes "architect/routers/authRoutes"
	curriculumRoutes "architect/routers/curriculumRoutes"
	progressRoutes "architect/routers/progressRoutes"
	userRoutes "architect/routers/userRoutes"
	"architect/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Curriculum Architect API", "version": "1.0.0"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Chat connections live in one process-scoped hub created here
	hub := utils.NewChatHub()

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	curriculumRoutes.SetupCurriculumRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	agentRoutes.SetupAgentRoutes(app, hub)

	if config.AppConfig.EnableBackgroundTasks {
		scheduler := utils.InitializeDigestScheduler()
		defer scheduler.Stop()
	} else {
		log.Println("Background tasks disabled")
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
