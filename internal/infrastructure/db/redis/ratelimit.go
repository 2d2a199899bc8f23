package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter caps requests per key within a rolling window using a
// Redis counter. Key format: ratelimit:<route>:<client-address>.
//
// On Redis failure the limiter fails open: availability of the API is worth
// more than strict enforcement of the cap.
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowLimiter{client: client, limit: int64(limit), window: window}
}

func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := "ratelimit:" + key

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return true, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// First hit of the window opens it.
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return true, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return n <= l.limit, nil
}
