package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	Debug       bool
	DBUrl       string
	// SMTP Configuration (Zoho)
	SMTPHost          string
	SMTPPort          string
	SMTPEmail         string
	SMTPPassword      string
	NotificationEmail string // Admin address that receives new-submission alerts
	// CORS
	AllowedOrigins []string
	// Redis Configuration (optional, used for rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitContactRequests int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "production"),
		Debug:             getEnvBool("DEBUG", false),
		DBUrl:             getEnv("DATABASE_URL", ""),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.zoho.com"),
		SMTPPort:          getEnv("SMTP_PORT", "465"),
		SMTPEmail:         getEnv("SMTP_EMAIL", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		NotificationEmail: getEnv("NOTIFICATION_EMAIL", ""),
		AllowedOrigins:    splitOrigins(getEnv("ALLOWED_ORIGINS", "")),
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		// Rate limiting defaults: 10 contact submissions per minute per IP
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactRequests: getEnvInt("RATE_LIMIT_CONTACT_REQUESTS", 10),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Submissions will not be persisted.")
	}
	if cfg.SMTPEmail == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials not configured. Notification emails will be skipped.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// splitOrigins parses a comma-separated ALLOWED_ORIGINS value into a clean
// origin list. Trailing slashes are stripped so origin comparison is exact.
func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
