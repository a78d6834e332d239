package middleware

import (
	"net/http"

	"stepfault-backend/config"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for cross-origin requests.
//
// Origin policy follows the deployment configuration: in debug mode, or
// when no origins are configured, any origin is allowed (wildcard).
// Otherwise only the explicit ALLOWED_ORIGINS list is echoed back; anything
// else gets no CORS headers and a 403 on preflight.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	wildcard := cfg.Debug || len(cfg.AllowedOrigins) == 0

	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var allowOrigin string
		switch {
		case wildcard:
			allowOrigin = "*"
		case allowed[origin]:
			allowOrigin = origin
		}

		if allowOrigin != "" {
			c.Header("Access-Control-Allow-Origin", allowOrigin)
			if allowOrigin != "*" {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Requested-With")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			// Same-origin requests carry no Origin header; let them pass.
			if allowOrigin != "" || origin == "" {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
