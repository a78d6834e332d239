package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stepfault-backend/config"
	v1 "stepfault-backend/internal/delivery/http/v1"
	"stepfault-backend/internal/repository/postgres"
	"stepfault-backend/internal/usecase"
	"stepfault-backend/pkg/database"
	"stepfault-backend/pkg/email"
	"stepfault-backend/pkg/logger"
	"stepfault-backend/pkg/redis"
	"stepfault-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact backend", "port", cfg.Port, "environment", cfg.Environment)

	// 3. Setup Database (pool opens lazily on first submission)
	db := database.NewPostgres(cfg.DBUrl)
	defer db.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Email Service
	mailer := email.NewService(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications will be skipped")
	}

	// 6. Setup UseCase
	validate := validator.New()
	validation.RegisterValidators(validate)
	submissionRepo := postgres.NewSubmissionRepository(db)
	submissionUC := usecase.NewSubmissionUsecase(submissionRepo, mailer, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: submissionUC,
		Config:       cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
