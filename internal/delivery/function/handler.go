// Package function exposes the contact form as a single self-contained
// http.Handler, suitable for serverless-style deployment where the full
// router is not wanted. It shares the submission pipeline with the API
// route; only the HTTP plumbing differs.
package function

import (
	"encoding/json"
	"errors"
	"net/http"

	"stepfault-backend/config"
	"stepfault-backend/internal/domain"
	"stepfault-backend/pkg/logger"
)

type payload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type Handler struct {
	submissionUC domain.SubmissionUsecase
	corsOrigin   string
}

func NewHandler(submissionUC domain.SubmissionUsecase, cfg *config.Config) *Handler {
	return &Handler{
		submissionUC: submissionUC,
		corsOrigin:   corsOrigin(cfg),
	}
}

// corsOrigin picks the single origin value this handler advertises:
// wildcard in debug mode or when no origins are configured, otherwise the
// first configured origin.
func corsOrigin(cfg *config.Config) string {
	if cfg.Debug || len(cfg.AllowedOrigins) == 0 {
		return "*"
	}
	return cfg.AllowedOrigins[0]
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		h.writeCORS(w)
		w.WriteHeader(http.StatusOK)
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		h.writeJSON(w, http.StatusMethodNotAllowed, payload{
			Success: false,
			Error:   "Method not allowed",
			Message: "Only POST is supported",
		})
	}
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	// The pipeline contains its own failures; this guard covers the
	// adapter layer itself.
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Error("contact function panicked", "panic", rec)
			h.writeJSON(w, http.StatusInternalServerError, payload{
				Success: false,
				Error:   "Internal server error",
				Message: "An error occurred processing your message. Please try again later.",
			})
		}
	}()

	var req domain.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("contact function received malformed JSON", "error", err)
		h.writeJSON(w, http.StatusBadRequest, payload{
			Success: false,
			Error:   "Invalid JSON",
			Message: "Invalid request format",
		})
		return
	}

	resp, err := h.submissionUC.Process(r.Context(), &req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.writeJSON(w, http.StatusUnprocessableEntity, payload{
				Success: false,
				Error:   "Validation error",
				Message: verr.Reason,
			})
			return
		}
		logger.Log.Error("contact function failed", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, payload{
			Success: false,
			Error:   "Internal server error",
			Message: "An error occurred processing your message. Please try again later.",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, payload{
		Success: resp.Success,
		Message: resp.Message,
	})
}

func (h *Handler) writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", h.corsOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, p payload) {
	h.writeCORS(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(p)
}
