package routes

import (
	"healthy-eats-backend/domain"
	"healthy-eats-backend/internal/api/handlers"
	"healthy-eats-backend/internal/metrics"
	"healthy-eats-backend/internal/middleware"
	"healthy-eats-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App                   *fiber.App
	RecommendationHandler handlers.RecommendationHandler
	CatalogHandler        handlers.CatalogHandler
	AuthHandler           handlers.AuthHandler
	Middleware            middleware.Middleware
	JWTService            jwt.JWTService
	Metrics               *metrics.Recorder
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recommendations()
	c.Catalog()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) Recommendations() {
	c.App.Post("/api/v1/recommendations", c.RecommendationHandler.GetFoodRecommendations)
}

func (c *Config) Catalog() {
	v1 := c.App.Group("/api/v1")
	{
		v1.Get("/dishes", c.CatalogHandler.ListDishes)
		v1.Get("/grey-zone-ingredients", c.CatalogHandler.GetGreyZoneIngredients)
		v1.Post("/recipes",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.OnlyAllow(domain.RoleAdmin),
			c.CatalogHandler.AddRecipe,
		)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin")
	admin.Post("/login", c.AuthHandler.Login)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	if reg := c.Metrics.Registry(); reg != nil {
		c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
}
