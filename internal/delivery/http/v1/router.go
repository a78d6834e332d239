package v1

import (
	"net/http"
	"time"

	"stepfault-backend/config"
	"stepfault-backend/internal/delivery/http/middleware"
	"stepfault-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	SubmissionUC domain.SubmissionUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"environment": deps.Config.Environment,
		})
	})

	// Public routes (no auth required)
	api := r.Group("/api")
	contactLimit := middleware.RateLimit(middleware.ContactRateLimitConfig(
		deps.Config.RateLimitContactRequests,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	NewContactHandler(api, deps.SubmissionUC, contactLimit)

	return r
}
