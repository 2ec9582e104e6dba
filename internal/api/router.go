package api

import (
	"quikchek/docs"
	"quikchek/internal/api/handlers"
	"quikchek/pkg/auth"
	"quikchek/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Account  *handlers.AccountHandler
	Document *handlers.DocumentHandler
	Category *handlers.CategoryHandler
	Scan     *handlers.ScanHandler
	Summary  *handlers.SummaryHandler
}

func SetupRouter(
	h Handlers,
	jwtManager *auth.JWTManager,
	uploadDir string,
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

	// Swagger
	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Stored receipt images
	app.Static("/uploads", uploadDir)

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	account := protected.Group("/account")
	account.Get("", h.Account.GetAccount)
	account.Get("/full", h.Account.GetFullAccount)
	account.Put("", h.Account.UpdateAccount)
	account.Delete("", h.Account.DeleteAccount)

	documents := protected.Group("/documents")
	documents.Post("", h.Document.CreateDocument)
	documents.Get("", h.Document.ListDocuments)
	documents.Get("/:id", h.Document.GetDocument)
	documents.Put("/:id", h.Document.UpdateDocument)
	documents.Delete("/:id", h.Document.DeleteDocument)
	documents.Get("/:id/categories", h.Document.GetDocumentCategories)

	protected.Post("/scan", h.Scan.ScanReceipt)

	categories := protected.Group("/categories")
	categories.Post("", h.Category.CreateCategory)
	categories.Get("", h.Category.ListCategories)
	categories.Get("/:id/documents", h.Category.GetCategoryDocuments)
	categories.Put("/:id", h.Category.UpdateCategory)
	categories.Delete("/:id", h.Category.DeleteCategory)

	summaryGroup := protected.Group("/summary")
	summaryGroup.Get("", h.Summary.GetSummary)
	summaryGroup.Get("/timeseries", h.Summary.GetTimeSeries)
	summaryGroup.Get("/chart", h.Summary.GetChart)
	summaryGroup.Get("/periods", h.Summary.GetComparison)
	summaryGroup.Post("/periods", h.Summary.AddPeriod)
	summaryGroup.Put("/periods/:index", h.Summary.UpdatePeriod)
	summaryGroup.Delete("/periods/:index", h.Summary.DeletePeriod)

	return app
}
