package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/commercekit/ecommerce-api/docs"
	"github.com/commercekit/ecommerce-api/internal/api/handler"
	"github.com/commercekit/ecommerce-api/internal/api/middleware"
	"github.com/commercekit/ecommerce-api/internal/core/domain"
	"github.com/commercekit/ecommerce-api/internal/core/service"
	"github.com/commercekit/ecommerce-api/internal/infrastructure/config"
	"github.com/commercekit/ecommerce-api/internal/infrastructure/db/postgres"
	redisdb "github.com/commercekit/ecommerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case the product list cache is disabled.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ecommerce"))

	// --- Dependencies ---
	credentialRepo := postgres.NewCredentialRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	var productCache service.ProductListCache
	if rdb != nil {
		productCache = redisdb.NewProductCache(rdb, time.Minute)
	}

	tokenTTL := time.Duration(cfg.TokenTTLMins) * time.Minute
	authService := service.NewAuthService(credentialRepo, cfg.JWTSecret, tokenTTL)
	userService := service.NewUserService(credentialRepo, log)
	productService := service.NewProductService(productRepo, categoryRepo, productCache, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	productHandler := handler.NewProductHandler(productService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/register/admin", authHandler.RegisterAdmin)
	e.POST("/auth/login", authHandler.Login)

	admin := e.Group("/auth", authRequired, adminOnly)
	admin.POST("/promote/:username", authHandler.Promote)
	admin.POST("/demote/:username", authHandler.Demote)
	admin.GET("/users/:username", authHandler.GetUser)

	// --- Catalog routes ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.GET("/categories", productHandler.ListCategories)

	catalog := e.Group("/products", authRequired, adminOnly)
	catalog.POST("", productHandler.Create)
	catalog.PUT("/:id", productHandler.Update)
	catalog.PATCH("/:id", productHandler.Patch)
	catalog.DELETE("/:id", productHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
