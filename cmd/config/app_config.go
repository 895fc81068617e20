package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"healthy-eats-backend/internal/api/handlers"
	"healthy-eats-backend/internal/api/routes"
	"healthy-eats-backend/internal/metrics"
	"healthy-eats-backend/internal/middleware"
	"healthy-eats-backend/internal/utils"
	"healthy-eats-backend/internal/utils/cache"
	"healthy-eats-backend/internal/utils/storage"
	"healthy-eats-backend/pkg/auth"
	"healthy-eats-backend/pkg/catalog"
	"healthy-eats-backend/pkg/jwt"
	"healthy-eats-backend/pkg/recommendation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers. rdb may be nil, in
// which case recommendations are not cached.
func NewApp(db *gorm.DB, rdb redis.UniversalClient, log *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	recorder := metrics.NewRecorder()
	s3 := storage.NewAwsS3()
	recommendationCache := cache.NewNoopRecommendationCache()
	if rdb != nil {
		ttl := time.Duration(utils.GetConfigInt("CACHE_TTL_SECONDS", 300)) * time.Second
		recommendationCache = cache.NewRedisRecommendationCache(rdb, ttl, log)
	}

	// Repository
	catalogRepository := catalog.NewCatalogRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	authService := auth.NewAuthService(utils.GetConfig("ADMIN_PASSWORD_HASH"), jwtService, log)
	catalogService := catalog.NewCatalogService(catalogRepository, s3, recorder, log)
	if err := catalogService.Load(context.Background()); err != nil {
		return nil, err
	}
	recommendationService := recommendation.NewRecommendationService(
		catalogService,
		recommendationCache,
		recorder,
		log,
		utils.GetConfigInt("RECOMMENDATION_LIMIT", recommendation.DefaultLimit),
	)

	// Handler
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	authHandler := handlers.NewAuthHandler(authService, validator)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		RecommendationHandler: recommendationHandler,
		CatalogHandler:        catalogHandler,
		AuthHandler:           authHandler,
		Middleware:            middlewares,
		JWTService:            jwtService,
		Metrics:               recorder,
	}
	routesConfig.Setup()
	return app, nil
}
