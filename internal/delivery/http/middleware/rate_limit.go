package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"stepfault-backend/internal/delivery/http/response"
	"stepfault-backend/pkg/logger"
	"stepfault-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// startCleanup runs a background goroutine that evicts expired fallback
// entries. Without it every distinct client IP would leave a counter
// resident forever.
func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			sweepExpired(time.Now())
		}
	}()
}

func sweepExpired(now time.Time) {
	rateLimitStore.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		expired := now.After(entry.resetAt)
		entry.mu.Unlock()
		if expired {
			rateLimitStore.Delete(key)
		}
		return true
	})
}

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
// Returns the current count.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// ContactRateLimitConfig limits public contact form submissions per IP.
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:contact:",
	}
}

// RateLimit creates a fixed-window per-IP rate limiting middleware.
// Uses Redis when available, falls back to in-memory when not; fails open
// so an unreachable Redis never blocks legitimate submissions.
func RateLimit(config RateLimitConfig) gin.HandlerFunc {
	// Start cleanup goroutine once (for the fallback store)
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := config.KeyPrefix + c.ClientIP()

		var count int
		if rc := redis.Client(); rc != nil {
			n, err := checkRedis(c, rc, key, config.Window)
			if err != nil {
				logger.Log.Warn("rate limit check failed, allowing request", "error", err)
				c.Next()
				return
			}
			count = n
		} else {
			count = checkInMemory(key, config.Window)
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > config.Limit {
			response.Error(c, http.StatusTooManyRequests,
				"Too many requests. Please try again later.", "Rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}

func checkRedis(c *gin.Context, rc *goredis.Client, key string, window time.Duration) (int, error) {
	ttl := int(window.Seconds())
	res, err := rc.Eval(c.Request.Context(), rateLimitLuaScript, []string{key}, ttl).Result()
	if err != nil {
		return 0, err
	}
	count, ok := res.(int64)
	if !ok {
		return 0, nil
	}
	return int(count), nil
}

func checkInMemory(key string, window time.Duration) int {
	now := time.Now()
	val, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := val.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count
}
