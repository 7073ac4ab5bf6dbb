package main

import (
	"fmt"
	"net/http"
	"os"

	"truckledger/internal/config"
	"truckledger/internal/database"
	"truckledger/internal/handlers"
	"truckledger/internal/logger"
	"truckledger/internal/middleware"
	"truckledger/internal/services"
	"truckledger/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "truckledger/internal/docs" // Import swagger docs
)

// @title           TruckLedger API
// @version         1.0
// @description     TruckLedger tracks the finances of a trucking company career: garages, trucks, trailers, drivers, loans, and a daily record of capitalization, net assets, and rolling profit.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	recordService := services.NewRecordService(db)
	profileService := services.NewProfileService(db, recordService)
	assetService := services.NewAssetService(db)

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(profileService)
	assetHandler := handlers.NewAssetHandler(assetService)
	recordHandler := handlers.NewRecordHandler(recordService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Profile routes
	profiles := v1.Group("/profiles")
	profiles.POST("", profileHandler.CreateProfile)
	profiles.GET("", profileHandler.ListProfiles)
	profiles.GET("/:id", profileHandler.GetProfile)
	profiles.DELETE("/:id", profileHandler.DeleteProfile)
	profiles.GET("/:id/summary", recordHandler.GetSummary)

	// Daily record routes
	profiles.POST("/:id/records", recordHandler.AddRecord)
	profiles.GET("/:id/records", recordHandler.GetRecords)

	// Asset ledger routes
	profiles.PUT("/:id/garages", assetHandler.UpsertGarage)
	profiles.DELETE("/:id/garages/:assetID", assetHandler.RemoveGarage)
	profiles.PUT("/:id/trucks", assetHandler.UpsertTruck)
	profiles.DELETE("/:id/trucks/:assetID", assetHandler.RemoveTruck)
	profiles.PUT("/:id/trailers", assetHandler.UpsertTrailer)
	profiles.DELETE("/:id/trailers/:assetID", assetHandler.RemoveTrailer)
	profiles.PUT("/:id/drivers", assetHandler.UpsertDriver)
	profiles.DELETE("/:id/drivers/:assetID", assetHandler.RemoveDriver)
	profiles.PUT("/:id/loans", assetHandler.UpsertLoan)
	profiles.DELETE("/:id/loans/:assetID", assetHandler.RemoveLoan)
	profiles.POST("/:id/loans/:assetID/clear", assetHandler.ClearLoan)

	log.Infof("Starting TruckLedger backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
