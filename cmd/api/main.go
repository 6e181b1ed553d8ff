package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"form-data-backend/config"
	"form-data-backend/docs"
	"form-data-backend/internal/delivery/http/middleware"
	v1 "form-data-backend/internal/delivery/http/v1"
	"form-data-backend/internal/repository/postgres"
	"form-data-backend/internal/usecase"
	"form-data-backend/pkg/database"
	"form-data-backend/pkg/logger"
	"form-data-backend/pkg/redis"
	"form-data-backend/pkg/security"
	"form-data-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Form Data API
// @version         1.0.0
// @description     REST API storing resume form submissions with their education, experience, skill, certification, language, project and reference collections.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	appLog := logger.New(cfg.LogLevel)
	events := security.NewSecurityLogger(cfg.APITitle, cfg.AppEnv)
	defer events.Sync()

	appLog.Info("Starting form data API", "port", cfg.Port, "env", cfg.AppEnv)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	docs.SwaggerInfo.Title = cfg.APITitle
	docs.SwaggerInfo.Version = cfg.APIVersion

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolConfig{
		MaxConns:       int32(cfg.DBMaxConns),
		MinConns:       int32(cfg.DBMinConns),
		SimpleProtocol: cfg.DBSimpleProtocol,
	})
	if err != nil {
		appLog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.DBAutoMigrate {
		if err := postgres.EnsureSchema(ctx, dbPool); err != nil {
			appLog.Error("Failed to create tables", "error", err)
			os.Exit(1)
		}
		appLog.Info("Database tables ready")
	}

	healthChecks := map[string]usecase.HealthCheck{
		"database": dbPool.Ping,
	}

	// 4. Setup Redis (optional; rate limiting falls back to memory)
	redisClient, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		appLog.Info("Redis not configured, using in-memory rate limiting")
	case err != nil:
		appLog.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	default:
		defer redisClient.Close()
		healthChecks["redis"] = func(ctx context.Context) error {
			return redis.HealthCheck(ctx, redisClient)
		}
	}

	rateLimiter := middleware.NewRateLimiter(
		middleware.DefaultRateLimitConfig(cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowSeconds)*time.Second),
		redisClient,
		events,
	)
	defer rateLimiter.Close()

	// 5. Setup Repositories & UseCases
	formDataRepo := postgres.NewFormDataRepository(dbPool)
	formDataUC := usecase.NewFormDataUsecase(formDataRepo, validation.New())
	healthUC := usecase.NewHealthUsecase(healthChecks)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		FormDataUC:  formDataUC,
		HealthUC:    healthUC,
		Logger:      appLog,
		Events:      events,
		RateLimiter: rateLimiter,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Server forced to shutdown", "error", err)
	}

	appLog.Info("Server exiting")
}
