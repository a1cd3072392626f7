package ratelimit

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares a fixed window between instances. Each hit reads the
// key's TTL alongside the INCR and sets the expiry whenever it is missing, so
// a failed EXPIRE is retried on the next hit instead of pinning the counter.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := r.prefix + key

	results := r.client.DoMulti(ctx,
		r.client.B().Incr().Key(redisKey).Build(),
		r.client.B().Ttl().Key(redisKey).Build(),
	)
	count, err := results[0].AsInt64()
	if err != nil {
		return false, err
	}
	ttl, err := results[1].AsInt64()
	if err != nil {
		return false, err
	}

	// -1 means the key exists without an expiry
	if ttl < 0 {
		expire := r.client.B().Expire().Key(redisKey).Seconds(r.windowSeconds()).Build()
		if err := r.client.Do(ctx, expire).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(r.limit), nil
}

func (r *RedisLimiter) windowSeconds() int64 {
	if s := int64(r.window / time.Second); s > 0 {
		return s
	}
	return 1
}
