package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Atomic increment with TTL on first hit.
// KEYS[1] = counter key, ARGV[1] = window in seconds. Returns {count, ttl}.
var fixedWindowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// FixedWindowLimiter counts hits per key in fixed windows stored in Redis
type FixedWindowLimiter struct {
	client redis.Scripter
	prefix string
	window time.Duration
}

// NewFixedWindowLimiter returns a limiter storing counters under prefix
func NewFixedWindowLimiter(client redis.Scripter, prefix string, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, prefix: prefix, window: window}
}

// Hit records one request for key and returns the count in the current window
// together with the window's reset time
func (l *FixedWindowLimiter) Hit(ctx context.Context, key string) (int, time.Time, error) {
	seconds := max(int(l.window.Seconds()), 1)

	result, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + key}, seconds).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}
	if len(result) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format: %v", result)
	}

	ttl := result[1]
	if ttl < 0 {
		ttl = int64(seconds)
	}
	return int(result[0]), time.Now().Add(time.Duration(ttl) * time.Second), nil
}
