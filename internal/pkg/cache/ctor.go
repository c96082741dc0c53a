package cache

import (
	"context"
	"fmt"

	"github.com/immvis/immvis-go/internal/app/config"
	"github.com/immvis/immvis-go/logger"
	"go.uber.org/zap"
)

// New returns an inmemory cache layered over redis when redis is configured
// and reachable, the inmemory cache alone otherwise.
func New(ctx context.Context, cfg config.Cache) (Cache, error) {
	inmem, err := newInmemoryCache(cfg.Inmemory)
	if err != nil {
		return nil, fmt.Errorf("init inmemory cache: %w", err)
	}

	if cfg.Redis == nil {
		logger.Info("redis cache is not configured; using inmemory cache only")
		return inmem, nil
	}

	redis, err := newRedisCache(ctx, cfg.Redis)
	if err != nil {
		logger.Warn("failed to init redis cache; using inmemory cache only", zap.Error(err))
		return inmem, nil
	}

	return &layered{local: inmem, shared: redis}, nil
}
