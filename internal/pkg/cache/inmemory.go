package cache

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/immvis/immvis-go/internal/app/config"
	"github.com/immvis/immvis-go/metric"
)

var errRejected = errors.New("inmemory cache rejected the item")

type inmemoryCache struct {
	cache *ristretto.Cache[string, []byte]
}

// NewInmemory returns a ristretto cache where the cost of an item is its size in bytes.
func NewInmemory(cfg config.InmemoryCache) (Cache, error) {
	return newInmemoryCache(cfg)
}

func newInmemoryCache(cfg config.InmemoryCache) (*inmemoryCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &inmemoryCache{cache: c}, nil
}

func (c *inmemoryCache) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.cache.SetWithTTL(key, value, int64(len(value)), ttl) {
		return errRejected
	}
	// make the item visible to the next Get
	c.cache.Wait()
	return nil
}

func (c *inmemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	val, ok := c.cache.Get(key)
	if !ok {
		metric.CacheMisses.WithLabelValues(metric.CacheLayerInmemory).Inc()
		return nil, ErrNotFound
	}
	metric.CacheHits.WithLabelValues(metric.CacheLayerInmemory).Inc()
	return val, nil
}

func (c *inmemoryCache) GetTTL(_ context.Context, key string) (time.Duration, error) {
	ttl, ok := c.cache.GetTTL(key)
	if !ok {
		return 0, ErrNotFound
	}
	return ttl, nil
}

func (c *inmemoryCache) Del(_ context.Context, key string) {
	c.cache.Del(key)
}

func (c *inmemoryCache) Close() error {
	c.cache.Close()
	return nil
}
