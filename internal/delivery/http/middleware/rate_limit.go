package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Limiter counts one hit for key and returns the count in the current window and its reset time
type Limiter interface {
	Hit(ctx context.Context, key string) (int, time.Time, error)
}

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: user id, else client IP)
	KeyFunc func(*gin.Context) string
	// Primary store, usually Redis. Nil uses the in-memory fallback only.
	Store Limiter
	// Used when Store is nil or fails
	Fallback *MemoryLimiter
	Logger   *slog.Logger
}

// SearchRateLimitConfig limits searches per authenticated user
func SearchRateLimitConfig(limit int, window time.Duration, store Limiter, log *slog.Logger) RateLimitConfig {
	return RateLimitConfig{
		Limit:    limit,
		Window:   window,
		KeyFunc:  userOrIPKey,
		Store:    store,
		Fallback: NewMemoryLimiter(window),
		Logger:   log,
	}
}

func userOrIPKey(c *gin.Context) string {
	if id := c.GetString(string(domain.KeyUserID)); id != "" {
		return "user:" + id
	}
	return "ip:" + c.ClientIP()
}

// RateLimitMiddleware enforces a fixed-window limit. The primary store fails open
// to the in-memory fallback.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = userOrIPKey
	}
	if config.Fallback == nil {
		config.Fallback = NewMemoryLimiter(config.Window)
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return func(c *gin.Context) {
		key := config.KeyFunc(c)
		ctx := c.Request.Context()

		var (
			count   int
			resetAt time.Time
			err     error
		)
		if config.Store != nil {
			count, resetAt, err = config.Store.Hit(ctx, key)
			if err != nil {
				config.Logger.Warn("rate limit store unavailable, using in-memory fallback", "error", err)
			}
		}
		if config.Store == nil || err != nil {
			count, resetAt, _ = config.Fallback.Hit(ctx, key)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := max(int(time.Until(resetAt).Seconds()), 1)
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			config.Logger.Info("rate limit triggered",
				"key", key,
				"path", c.FullPath(),
				"request_id", c.GetString(string(domain.KeyRequestID)),
			)
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(config.Limit-count, 0)))
		c.Next()
	}
}

// rateLimitEntry tracks request count for a key
type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a process-local fixed-window limiter
type MemoryLimiter struct {
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	sweepAt time.Time
}

// NewMemoryLimiter creates an in-memory limiter with the given window
func NewMemoryLimiter(window time.Duration) *MemoryLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryLimiter{window: window, now: time.Now, entries: make(map[string]*rateLimitEntry)}
}

// Hit implements Limiter
func (l *MemoryLimiter) Hit(_ context.Context, key string) (int, time.Time, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, ok := l.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		entry = &rateLimitEntry{resetAt: now.Add(l.window)}
		l.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.resetAt, nil
}

// sweep drops expired entries at most once per window
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Before(l.sweepAt) {
		return
	}
	for key, entry := range l.entries {
		if !now.Before(entry.resetAt) {
			delete(l.entries, key)
		}
	}
	l.sweepAt = now.Add(l.window)
}
