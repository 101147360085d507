package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/devmahbe/crime-reporting-system/internal/config"
	"github.com/devmahbe/crime-reporting-system/internal/controllers"
	"github.com/devmahbe/crime-reporting-system/internal/database"
	"github.com/devmahbe/crime-reporting-system/internal/logger"
	"github.com/devmahbe/crime-reporting-system/internal/metrics"
	appmw "github.com/devmahbe/crime-reporting-system/internal/middleware"
	"github.com/devmahbe/crime-reporting-system/internal/models"
	"github.com/devmahbe/crime-reporting-system/internal/services"
	"github.com/devmahbe/crime-reporting-system/internal/storage"
)

func main() {
	// Load configs
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not configured")
	}

	zlog, err := logger.New(cfg.Development)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Connect to the database
	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Location{},
		&models.Complaint{},
		&models.Evidence{},
	); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	// Redis backs the submission rate limiter.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Fatal("failed to connect to redis", zap.Error(err))
	}

	// Instantiate services
	jurisdictionSvc := services.NewJurisdictionService(db)
	referenceSvc := services.NewReferenceService(db)
	complaintSvc := services.NewComplaintService(db, jurisdictionSvc, referenceSvc, zlog)
	files := storage.NewDiskStore(cfg.UploadDir)

	// Create controllers
	complaintCtrl := controllers.NewComplaintController(complaintSvc, files, zlog)
	referenceCtrl := controllers.NewReferenceController(referenceSvc, zlog)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(appmw.RequestLogger(zlog))
	e.Use(appmw.WithSession(cfg.JWTSecret))

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", metrics.Handler())
	e.Static("/uploads", cfg.UploadDir)

	// Register routes
	api := e.Group("/api/v1")
	referenceCtrl.Register(api)
	complaintCtrl.Register(api, appmw.SubmissionRateLimiter(rdb, zlog, cfg.SubmissionLimit, 24*time.Hour))

	// Run the server
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
