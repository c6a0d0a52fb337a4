package routes

import (
	"github.com/gofiber/fiber/v2"

	"codeprep/backend/config"
	"codeprep/backend/controllers"
	"codeprep/backend/mailer"
	"codeprep/backend/middleware"
	"codeprep/backend/store"
)

func SetupRoutes(app *fiber.App, st store.Users, cfg *config.Config, m mailer.Sender) {
	// Liveness probe, also the keep-alive ping target.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is running!")
	})

	authController := controllers.NewAuthController(st, cfg, m)
	app.Post("/api/register", authController.Register)
	app.Post("/api/login", authController.Login)
	app.Post("/api/verify-otp", authController.VerifyOTP)

	userController := controllers.NewUserController(st, cfg)
	app.Post("/api/user", userController.GetUser)
	app.Post("/api/solved", userController.UpdateSolved)

	authMiddleware := middleware.AuthMiddleware(cfg)
	app.Get("/api/dashboard", authMiddleware, userController.Dashboard)

	problemsController := controllers.NewProblemsController(cfg)
	app.Get("/api/companies", problemsController.ListCompanies)
	app.Get("/api/companies/:company/problems", problemsController.GetCompanyProblems)
}
