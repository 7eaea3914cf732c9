package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sweetshop/inventory-system/docs"
	"github.com/sweetshop/inventory-system/internal/api/handler"
	"github.com/sweetshop/inventory-system/internal/api/middleware"
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/service"
	mongodb "github.com/sweetshop/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sweetshop/inventory-system/internal/infrastructure/db/redis"
	"github.com/sweetshop/inventory-system/internal/infrastructure/http/handlers"
	"github.com/sweetshop/inventory-system/internal/infrastructure/queue"
)

// RouterConfig carries the settings the composition needs beyond the
// infrastructure clients.
type RouterConfig struct {
	JWTSecret       string
	TokenTTL        time.Duration
	CatalogCacheTTL time.Duration
	MovementWorkers int
}

// NewRouter builds the Echo instance with all routes registered and starts
// the movement dispatcher workers. Workers stop when ctx is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sweetshop"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	sweetRepo := mongodb.NewSweetRepository(db)
	movementRepo := mongodb.NewMovementRepository(db)

	movementService := service.NewMovementService(movementRepo, log)
	dispatcher := queue.NewDispatcher(cfg.MovementWorkers, movementService, log)
	dispatcher.Start(ctx)

	cache := redisdb.NewCatalogCache(rdb, cfg.CatalogCacheTTL, log)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	sweetService := service.NewSweetService(sweetRepo, dispatcher, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	sweetHandler := handler.NewSweetHandler(sweetService, movementService)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	anyRole := middleware.RequireRole(domain.RoleAdmin, domain.RoleUser)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalog and stock routes ---
	v1 := e.Group("/v1/sweets", authMW)
	v1.GET("", sweetHandler.List, anyRole)
	v1.GET("/:id", sweetHandler.Get, anyRole)
	v1.POST("/:id/purchase", sweetHandler.Purchase, anyRole)
	v1.POST("", sweetHandler.Create, adminOnly)
	v1.PUT("/:id", sweetHandler.Update, adminOnly)
	v1.DELETE("/:id", sweetHandler.Delete, adminOnly)
	v1.POST("/:id/restock", sweetHandler.Restock, adminOnly)
	v1.GET("/:id/movements", sweetHandler.Movements, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
