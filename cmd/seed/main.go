package main

import (
	"context"
	"log"
	"time"

	"quikchek/internal/models"
	"quikchek/internal/repository"
	"quikchek/pkg/auth"
	"quikchek/pkg/config"
	"quikchek/pkg/logger"
	"quikchek/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@quikchek.app"
	demoUsername = "demo"
	demoPassword = "demo1234"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	docRepo := repository.NewDocumentRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if existing, err := userRepo.GetByEmail(ctx, demoEmail); err == nil && existing != nil {
		appLogger.Info("Demo user already exists, nothing to do", zap.String("email", demoEmail))
		return
	}

	now := time.Now()

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash password", zap.Error(err))
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  demoUsername,
		Email:     demoEmail,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	// Every account gets the protected fallback category first
	categoryNames := []string{models.OtherCategoryName, "Groceries", "Electronics", "Transport"}
	categories := make(map[string]*models.SpendingCategory, len(categoryNames))
	for _, name := range categoryNames {
		category := &models.SpendingCategory{
			ID:        uuid.New(),
			UserID:    user.ID,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := categoryRepo.Create(ctx, category); err != nil {
			appLogger.Fatal("Failed to create category", zap.String("name", name), zap.Error(err))
		}
		categories[name] = category
	}

	twelveMonths := 12
	docs := []struct {
		name       string
		company    string
		amount     float64
		daysAgo    int
		warranty   *int
		categories []string
	}{
		{"Weekly groceries", "Biedronka", 142.37, 2, nil, []string{"Groceries"}},
		{"Wireless headphones", "Media Expert Sp. z o.o.", 349.99, 5, &twelveMonths, []string{"Electronics"}},
		{"Monthly transit pass", "ZTM Warszawa", 110.00, 12, nil, []string{"Transport"}},
		{"Pharmacy run", "Apteka Centrum", 58.20, 20, nil, []string{models.OtherCategoryName}},
		{"Road trip supplies", "Orlen", 215.80, 25, nil, []string{"Groceries", "Transport"}},
	}

	for _, d := range docs {
		doc := &models.Document{
			ID:          uuid.New(),
			UserID:      user.ID,
			Timestamp:   now.AddDate(0, 0, -d.daysAgo),
			Name:        d.name,
			Company:     d.company,
			AmountSpent: d.amount,
			HasWarranty: d.warranty != nil,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		doc.WarrantyMonths = d.warranty

		if err := docRepo.Create(ctx, doc); err != nil {
			appLogger.Fatal("Failed to create document", zap.String("name", d.name), zap.Error(err))
		}

		categoryIDs := make([]uuid.UUID, len(d.categories))
		for i, name := range d.categories {
			categoryIDs[i] = categories[name].ID
		}
		if err := docRepo.SetCategories(ctx, doc.ID, categoryIDs); err != nil {
			appLogger.Fatal("Failed to assign categories", zap.String("name", d.name), zap.Error(err))
		}
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("email", demoEmail),
		zap.Int("documents", len(docs)),
	)
}
