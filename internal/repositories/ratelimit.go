package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/jobboard/internal/logger"
)

// RateLimitRepository keeps fixed window request counters in Redis.
type RateLimitRepository struct {
	client *redis.Client
}

func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client}
}

// Incr increments the counter of key and returns its value and the time left in the window.
// The window starts with the first increment.
func (r *RateLimitRepository) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.PTTL(ctx, key)

	_, err := pipe.Exec(ctx)

	logger.Log.Infow("rate limit",
		"key", key,
		"count", incr.Val(),
		"ttl", ttl.Val(),
		"error", err,
	)

	if err != nil {
		return 0, 0, err
	}

	left := ttl.Val()
	if left < 0 {
		left = window
	}
	return incr.Val(), left, nil
}
