package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quikchek/internal/api"
	"quikchek/internal/api/handlers"
	"quikchek/internal/repository"
	"quikchek/internal/service"
	"quikchek/pkg/auth"
	"quikchek/pkg/config"
	"quikchek/pkg/logger"
	"quikchek/pkg/postgres"

	"go.uber.org/zap"
)

// @title QuikChek API
// @version 1.0
// @description Personal expense tracking API with receipt scanning
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@quikchek.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting QuikChek service")

	// Apply pending migrations before opening the pool
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	docRepo := repository.NewDocumentRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	periodRepo := repository.NewPeriodRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, categoryRepo, jwtManager, appLogger)
	ocrService := service.NewOCRService(cfg.OCR.Languages, appLogger)
	scanService := service.NewScanService(ocrService, cfg.OCR.UploadDir, appLogger)
	docService := service.NewDocumentService(docRepo, categoryRepo, cfg.OCR.UploadDir, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, docRepo, appLogger)
	userService := service.NewUserService(userRepo, docRepo, categoryRepo, cfg.OCR.UploadDir, appLogger)
	summaryService := service.NewSummaryService(docRepo, categoryRepo, periodRepo, appLogger)

	// Start the orphaned-upload janitor
	janitor := service.NewJanitor(docRepo, cfg.OCR.UploadDir, cfg.Janitor.Schedule, appLogger)
	if err := janitor.Start(); err != nil {
		appLogger.Fatal("Failed to start janitor", zap.Error(err))
	}

	// Setup router
	app := api.SetupRouter(api.Handlers{
		Auth:     handlers.NewAuthHandler(authService, appLogger),
		Account:  handlers.NewAccountHandler(userService, appLogger),
		Document: handlers.NewDocumentHandler(docService, appLogger),
		Category: handlers.NewCategoryHandler(categoryService, appLogger),
		Scan:     handlers.NewScanHandler(scanService, appLogger),
		Summary:  handlers.NewSummaryHandler(summaryService, appLogger),
	}, jwtManager, cfg.OCR.UploadDir, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	janitor.Stop()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
