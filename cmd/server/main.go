package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookshop-app/config"
	"bookshop-app/internal/handler"
	"bookshop-app/internal/models"
	"bookshop-app/internal/service"
	"bookshop-app/internal/storage/gormstore"
	"bookshop-app/internal/utils"
	"bookshop-app/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Connect to Database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Student{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Supplier{},
		&models.SupplierPayment{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.Seed(db, cfg.Defaults)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	loc := time.Local
	if cfg.Defaults.ReportTimezone != "" {
		loc, err = time.LoadLocation(cfg.Defaults.ReportTimezone)
		if err != nil {
			log.Fatalf("Invalid report timezone %q: %v", cfg.Defaults.ReportTimezone, err)
		}
	}

	// 4. Wire Services
	store := gormstore.New(db)
	tokens := utils.NewTokenManager(cfg.Server.JWTSecret, cfg.Server.JWTExpirationHours)

	settingsSvc := service.NewSettingsService(store, models.Setting{
		StoreName:         cfg.Defaults.StoreName,
		Currency:          cfg.Defaults.Currency,
		LowStockThreshold: cfg.Defaults.LowStockThreshold,
	}, logger)
	catalogSvc := service.NewCatalogService(store, logger)
	saleSvc := service.NewSaleService(store, logger)
	reportSvc := service.NewReportService(store, loc, logger)
	studentSvc := service.NewStudentService(store, logger)
	supplierSvc := service.NewSupplierService(store, logger)
	authSvc := service.NewAuthService(store, tokens, logger)

	// 5. Initialize Router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r, &handler.Set{
		Auth:      handler.NewAuthHandler(authSvc, logger),
		Books:     handler.NewBookHandler(catalogSvc, settingsSvc, logger),
		Sales:     handler.NewSaleHandler(saleSvc, reportSvc, loc, logger),
		Students:  handler.NewStudentHandler(studentSvc, reportSvc, logger),
		Suppliers: handler.NewSupplierHandler(supplierSvc, logger),
		Settings:  handler.NewSettingsHandler(settingsSvc, logger),
		Dashboard: handler.NewDashboardHandler(reportSvc, settingsSvc, logger),
	}, tokens)

	// 6. Start Server
	port := cfg.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
