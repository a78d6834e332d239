package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"stepfault-backend/config"
	"stepfault-backend/internal/delivery/http/middleware"
	"stepfault-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

func corsRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORSMiddleware(cfg))
	r.POST("/contact", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORSWildcardInDebug(t *testing.T) {
	r := corsRouter(&config.Config{Debug: true})

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSWildcardWhenNoOriginsConfigured(t *testing.T) {
	r := corsRouter(&config.Config{})

	req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSExplicitOriginList(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"https://stepfault.com"}}

	t.Run("allowed origin is echoed", func(t *testing.T) {
		r := corsRouter(cfg)

		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set("Origin", "https://stepfault.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "https://stepfault.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		r := corsRouter(cfg)

		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})

	t.Run("unknown origin preflight is rejected", func(t *testing.T) {
		r := corsRouter(cfg)

		req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("same-origin preflight passes", func(t *testing.T) {
		r := corsRouter(cfg)

		req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
