package api

import (
	"spendlens/internal/api/handlers"
	"spendlens/pkg/auth"
	"spendlens/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	expenseHandler *handlers.ExpenseHandler,
	budgetHandler *handlers.BudgetHandler,
	configHandler *handlers.ConfigHandler,
	ingestHandler *handlers.IngestHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	expenses := protected.Group("/expenses")
	expenses.Post("", expenseHandler.Create)
	expenses.Get("", expenseHandler.List)
	expenses.Get("/stats", expenseHandler.Stats)
	expenses.Get("/:id", expenseHandler.Get)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	budgets := protected.Group("/budgets")
	budgets.Post("", budgetHandler.Create)
	budgets.Get("", budgetHandler.List)
	budgets.Get("/status", budgetHandler.Status)
	budgets.Put("/:category", budgetHandler.Update)
	budgets.Delete("/:category", budgetHandler.Delete)

	categories := protected.Group("/categories")
	categories.Post("", configHandler.CreateCategory)
	categories.Get("", configHandler.ListCategories)
	categories.Get("/:id", configHandler.GetCategory)
	categories.Put("/:id", configHandler.UpdateCategory)
	categories.Delete("/:id", configHandler.DeleteCategory)

	bankPatterns := protected.Group("/bank-patterns")
	bankPatterns.Post("", configHandler.CreateBankPattern)
	bankPatterns.Get("", configHandler.ListBankPatterns)
	bankPatterns.Get("/:id", configHandler.GetBankPattern)
	bankPatterns.Put("/:id", configHandler.UpdateBankPattern)
	bankPatterns.Delete("/:id", configHandler.DeleteBankPattern)

	email := protected.Group("/email")
	email.Post("/parse", ingestHandler.Parse)
	email.Post("/parse-and-create", ingestHandler.ParseAndCreate)
	email.Get("/polling/status", ingestHandler.PollingStatus)
	email.Post("/polling/start", ingestHandler.StartPolling)
	email.Post("/polling/stop", ingestHandler.StopPolling)

	return app
}
