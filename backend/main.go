package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"codeprep/backend/config"
	"codeprep/backend/mailer"
	"codeprep/backend/middleware"
	"codeprep/backend/pinger"
	"codeprep/backend/routes"
	"codeprep/backend/store"
	"codeprep/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	st, err := store.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, cfg, mailer.FromConfig(cfg))

	// Keep the deployment awake
	pinger.Start(cfg.PingURL, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
