package cache

import (
	"context"
	"errors"
	"time"

	"github.com/immvis/immvis-go/logger"
	"go.uber.org/zap"
)

// layered reads through a fast local cache into a shared one.
// Failures of the shared layer are logged and never fail a request.
type layered struct {
	local  Cache
	shared Cache
}

func (c *layered) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.shared.SetWithTTL(ctx, key, value, ttl); err != nil {
		logger.Error("failed to set value in shared cache", zap.String("key", key), zap.Error(err))
	}
	return c.local.SetWithTTL(ctx, key, value, ttl)
}

func (c *layered) Get(ctx context.Context, key string) ([]byte, error) {
	if val, err := c.local.Get(ctx, key); err == nil {
		return val, nil
	}

	val, err := c.shared.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Error("failed to get value from shared cache", zap.String("key", key), zap.Error(err))
		}
		return nil, err
	}

	if ttl, err := c.shared.GetTTL(ctx, key); err == nil {
		_ = c.local.SetWithTTL(ctx, key, val, ttl)
	}
	return val, nil
}

func (c *layered) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	if ttl, err := c.local.GetTTL(ctx, key); err == nil {
		return ttl, nil
	}
	return c.shared.GetTTL(ctx, key)
}

func (c *layered) Del(ctx context.Context, key string) {
	c.shared.Del(ctx, key)
	c.local.Del(ctx, key)
}

func (c *layered) Close() error {
	return errors.Join(c.local.Close(), c.shared.Close())
}
