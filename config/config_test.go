package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "smtp.zoho.com", cfg.SMTPHost)
	assert.Equal(t, "465", cfg.SMTPPort)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 10, cfg.RateLimitContactRequests)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("RATE_LIMIT_CONTACT_REQUESTS", "3")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 3, cfg.RateLimitContactRequests)
}

func TestSplitOrigins(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, splitOrigins(""))
		assert.Nil(t, splitOrigins("   "))
	})

	t.Run("comma separated with whitespace and trailing slashes", func(t *testing.T) {
		got := splitOrigins(" https://stepfault.com , https://www.stepfault.com/ ")
		assert.Equal(t, []string{"https://stepfault.com", "https://www.stepfault.com"}, got)
	})

	t.Run("trailing comma", func(t *testing.T) {
		got := splitOrigins("https://stepfault.com,")
		assert.Equal(t, []string{"https://stepfault.com"}, got)
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "not-a-number")
	assert.Equal(t, 42, getEnvInt("TEST_INT", 42))

	t.Setenv("TEST_BOOL", "definitely")
	assert.True(t, getEnvBool("TEST_BOOL", true))

	t.Setenv("TEST_STR", "value")
	assert.Equal(t, "value", getEnv("TEST_STR", "fallback"))
	assert.Equal(t, "fallback", getEnv("TEST_STR_MISSING", "fallback"))
}
