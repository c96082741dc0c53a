package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/immvis/immvis-go/internal/app/config"
	"github.com/immvis/immvis-go/internal/pkg/redisclient"
	"github.com/immvis/immvis-go/metric"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client redis.UniversalClient
}

func newRedisCache(ctx context.Context, cfg *config.Redis) (*redisCache, error) {
	client, err := redisclient.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create redis client: %w", err)
	}
	return &redisCache{client: client}, nil
}

func (c *redisCache) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		metric.CacheHits.WithLabelValues(metric.CacheLayerRedis).Inc()
		return value, nil
	case errors.Is(err, redis.Nil):
		metric.CacheMisses.WithLabelValues(metric.CacheLayerRedis).Inc()
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// GetTTL returns 0 for keys without expiration.
func (c *redisCache) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// -2 marks a missing key, -1 a key without expiration
	switch ttl {
	case -2:
		return 0, ErrNotFound
	case -1:
		return 0, nil
	}
	return ttl, nil
}

func (c *redisCache) Del(ctx context.Context, key string) {
	c.client.Del(ctx, key)
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
