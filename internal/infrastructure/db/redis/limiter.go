package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter bounds sign-in attempts per client IP within a sliding
// window, backed by a Redis sorted set of attempt timestamps.
// Key format: signin:<client_ip>
type LoginLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// A limit <= 0 disables limiting: Allow always returns true.
func NewLoginLimiter(client *redis.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow records one attempt for clientIP and reports whether it stays within
// the limit, along with how long the client should wait when it does not.
// Redis failures fail open: authentication must not break because the
// limiter store is down.
func (l *LoginLimiter) Allow(ctx context.Context, clientIP string) (bool, time.Duration) {
	if l == nil || l.limit <= 0 {
		return true, 0
	}

	key := l.key(clientIP)
	now := time.Now()
	windowStart := now.Add(-l.window)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	count := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(ctx, key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, 0
	}

	if int(count.Val()) >= l.limit {
		retryAfter := l.window
		if oldest, err := l.client.ZRange(ctx, key, 0, 0).Result(); err == nil && len(oldest) > 0 {
			var ts int64
			if _, err := fmt.Sscanf(oldest[0], "%d", &ts); err == nil {
				retryAfter = time.Until(time.Unix(0, ts).Add(l.window))
			}
		}
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return false, retryAfter
	}

	return true, 0
}

func (l *LoginLimiter) key(clientIP string) string {
	return "signin:" + clientIP
}
