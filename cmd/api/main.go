package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/commercekit/ecommerce-api/internal/api"
	"github.com/commercekit/ecommerce-api/internal/core/service"
	"github.com/commercekit/ecommerce-api/internal/infrastructure/config"
	"github.com/commercekit/ecommerce-api/internal/infrastructure/db/postgres"
	redisdb "github.com/commercekit/ecommerce-api/internal/infrastructure/db/redis"
	"github.com/commercekit/ecommerce-api/internal/infrastructure/seed"
	"github.com/commercekit/ecommerce-api/pkg/logger"
)

// @title           Ecommerce API
// @version         1.0
// @description     Product catalog and user management service with JWT authentication.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting ecommerce api")

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to postgres")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	// Redis is optional: without it the API runs with the product list cache
	// disabled.
	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, product list cache disabled")
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	credentialRepo := postgres.NewCredentialRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	tokenTTL := time.Duration(cfg.TokenTTLMins) * time.Minute
	authService := service.NewAuthService(credentialRepo, cfg.JWTSecret, tokenTTL)

	if err := seed.Run(ctx, authService, categoryRepo, cfg.Admin, log); err != nil {
		log.Fatal().Err(err).Msg("seed initial data")
	}

	e := api.NewRouter(pool, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
