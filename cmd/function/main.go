// Standalone deployment of the contact form handler: one route, no
// framework, same pipeline as the API server.
package main

import (
	"log"
	"net/http"

	"stepfault-backend/config"
	"stepfault-backend/internal/delivery/function"
	"stepfault-backend/internal/repository/postgres"
	"stepfault-backend/internal/usecase"
	"stepfault-backend/pkg/database"
	"stepfault-backend/pkg/email"
	"stepfault-backend/pkg/logger"
	"stepfault-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting contact function", "port", cfg.Port)

	db := database.NewPostgres(cfg.DBUrl)
	defer db.Close()

	validate := validator.New()
	validation.RegisterValidators(validate)

	submissionUC := usecase.NewSubmissionUsecase(
		postgres.NewSubmissionRepository(db),
		email.NewService(cfg),
		validate,
	)

	mux := http.NewServeMux()
	mux.Handle("/api/contact", function.NewHandler(submissionUC, cfg))

	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		logger.Log.Error("Listen failed", "error", err)
	}
}
