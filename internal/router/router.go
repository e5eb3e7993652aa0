// Package router wires handlers, auth middleware, rate limiting and
// response caching onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/mkravets/theater-tickets/internal/config"
	"github.com/mkravets/theater-tickets/internal/handler"
	"github.com/mkravets/theater-tickets/internal/middleware"
	"github.com/mkravets/theater-tickets/internal/monitoring"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health  *handler.HealthHandler
	Home    *handler.HomeHandler
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	Catalog *handler.CatalogHandler
	Buy     *handler.BuyHandler
	API     *handler.APIHandler
}

// New builds the Echo instance. Redis is optional: with a nil client
// the rate limiter and cache middlewares are skipped entirely.
func New(cfg *config.Config, rdb *redis.Client, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	// Public surface.
	e.GET("/", h.Home.Index)
	e.GET("/healthz", h.Health.Check)
	e.GET("/metrics", monitoring.Handler())
	e.POST("/register", h.Auth.Register)
	e.POST("/token", h.Auth.Token)
	e.POST("/login", h.Auth.Token)

	// Everything below requires a valid access token.
	auth := e.Group("", middleware.JWTAuth(cfg.JWTSecret))

	if rdb != nil {
		rl := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
		auth.Use(rl)
	}

	auth.GET("/profile", h.Profile.Show)
	auth.POST("/profile/funds", h.Profile.AddFunds)

	// Catalog listings are cache candidates: hot, read-only, and
	// tolerant of a short staleness window.
	catalog := auth.Group("")
	if rdb != nil {
		catalog.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}
	catalog.GET("/theaters", h.Catalog.ListTheaters)
	catalog.GET("/performances", h.Catalog.ListPerformances)
	catalog.GET("/tickets", h.Catalog.ListTickets)

	auth.GET("/theaters/:id", h.Catalog.GetTheater)
	auth.GET("/performances/:id", h.Catalog.GetPerformance)
	auth.GET("/tickets/:id", h.Catalog.GetTicket)

	auth.GET("/buy/:id", h.Buy.Show)
	auth.POST("/buy/:id", h.Buy.Buy)

	// REST API: reads for any authenticated user, writes admin only.
	api := auth.Group("/api", middleware.APIGuard())

	api.GET("/theaters", h.Catalog.ListTheaters)
	api.GET("/theaters/:id", h.Catalog.GetTheater)
	api.POST("/theaters", h.API.CreateTheater)
	api.PUT("/theaters/:id", h.API.UpdateTheater)
	api.DELETE("/theaters/:id", h.API.DeleteTheater)

	api.GET("/performances", h.Catalog.ListPerformances)
	api.GET("/performances/:id", h.Catalog.GetPerformance)
	api.POST("/performances", h.API.CreatePerformance)
	api.PUT("/performances/:id", h.API.UpdatePerformance)
	api.DELETE("/performances/:id", h.API.DeletePerformance)

	api.GET("/showings/:id", h.API.GetShowing)
	api.POST("/showings", h.API.CreateShowing)
	api.DELETE("/showings/:id", h.API.DeleteShowing)

	api.GET("/tickets", h.Catalog.ListTickets)
	api.GET("/tickets/:id", h.Catalog.GetTicket)
	api.POST("/tickets", h.API.CreateTicket)
	api.PUT("/tickets/:id", h.API.UpdateTicket)
	api.DELETE("/tickets/:id", h.API.DeleteTicket)

	return e
}
