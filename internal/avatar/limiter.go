package avatar

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
)

const defaultLimiterKey = "ironunicorn:avatar-generation"

// RedisLimiter spaces generation requests with a per minute quota shared through redis.
type RedisLimiter struct {
	limiter *redis_rate.Limiter
	key     string
	limit   redis_rate.Limit
	sleep   sleepFunc
}

func NewRedisLimiter(rdb *redis.Client, key string, perMinute int) *RedisLimiter {
	if key == "" {
		key = defaultLimiterKey
	}
	return &RedisLimiter{
		limiter: redis_rate.NewLimiter(rdb),
		key:     key,
		limit:   redis_rate.PerMinute(perMinute),
		sleep:   sleepCtx,
	}
}

// Wait blocks until a request is allowed or ctx is done.
func (l *RedisLimiter) Wait(ctx context.Context) error {
	for {
		res, err := l.limiter.Allow(ctx, l.key, l.limit)
		if err != nil {
			return fmt.Errorf("rate limiter allow: %w", err)
		}
		if res.Allowed > 0 {
			return nil
		}
		if err := l.sleep(ctx, res.RetryAfter); err != nil {
			return err
		}
	}
}
