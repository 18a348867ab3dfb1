package main

import (
	"context"
	"go-talent-backend/config"
	_ "go-talent-backend/docs" // Important for Swagger
	"go-talent-backend/internal/delivery/http/middleware"
	v1 "go-talent-backend/internal/delivery/http/v1"
	"go-talent-backend/internal/repository/postgres"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/auth"
	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/metrics"
	redispkg "go-talent-backend/pkg/redis"
	"go-talent-backend/pkg/storage"
	"go-talent-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title           Talent Search API
// @version         1.0
// @description     Candidate search and ranking engine for the talent marketplace.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting talent search backend", "port", cfg.Port, "env", cfg.AppEnv)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.DefaultPoolConfig, logger.Log)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	var limiter middleware.Limiter
	var redisCheck usecase.HealthCheck
	if cfg.RedisURL != "" {
		rdb, err := redispkg.NewClient(ctx, redispkg.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable - using in-memory rate limiting", "error", err)
		} else {
			defer rdb.Close()
			window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
			limiter = redispkg.NewFixedWindowLimiter(rdb, "rl:search:", window)
			redisCheck = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}

	// 5. Setup Metrics
	var m *metrics.Metrics
	var recorder usecase.SearchRecorder
	if cfg.MetricsEnabled {
		m = metrics.New()
		recorder = m
	}

	// 6. Setup Export Archive (optional)
	var archive usecase.ExportArchiver
	var archiveCheck usecase.HealthCheck
	if cfg.ExportArchiveBucket != "" {
		s3Client, err := storage.NewS3Client(ctx, storage.Config{
			Provider:        storage.Provider(cfg.S3Provider),
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.ExportArchiveBucket,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Warn("Export archive unavailable", "error", err)
		} else {
			exportArchive := storage.NewExportArchive(s3Client, cfg.ExportArchiveBucket, cfg.ExportArchivePrefix)
			archive = exportArchive
			archiveCheck = exportArchive.Ping
		}
	}

	// 7. Setup Repositories & UseCases
	talentRepo := postgres.NewTalentRepository(dbPool)

	talentUC := usecase.NewTalentUsecase(talentRepo, validation.New(), recorder, logger.Log, usecase.TalentUsecaseConfig{
		Limits: usecase.SearchLimits{
			DefaultLimit: cfg.SearchDefaultLimit,
			MaxLimit:     cfg.SearchMaxLimit,
		},
		ExportMaxRows: cfg.ExportMaxRows,
		Archive:       archive,
	})
	healthUC := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"database": dbPool.Ping,
		"redis":    redisCheck,
		"archive":  archiveCheck,
	})

	// 8. Setup Auth Provider (JWKS, optional)
	var jwksProvider *auth.Provider
	if cfg.JWKSURL != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSURL)
	}

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		TalentUC: talentUC,
		HealthUC: healthUC,
		Config:   cfg,
		JWKS:     jwksProvider,
		Limiter:  limiter,
		Metrics:  m,
		Logger:   logger.Log,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
