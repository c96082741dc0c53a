// Package cache stores serialized gateway responses.
package cache

import (
	"context"
	"errors"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// SetWithTTL stores value for ttl, 0 means no expiration.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	GetTTL(ctx context.Context, key string) (time.Duration, error)
	Del(ctx context.Context, key string)
	Close() error
}

var ErrNotFound = errors.New("not found")
