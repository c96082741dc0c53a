// Package ratelimiter limits request rate per key with GCRA.
package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/immvis/immvis-go/internal/app/config"
	"github.com/throttled/throttled/v2"
	"github.com/throttled/throttled/v2/store/memstore"
)

const quantityPerCall = 1

var ErrInvalidConfig = errors.New("invalid rate limiter config")

// Info describes the limit state of a key, negative values are unknown.
type Info struct {
	Limit      int
	Remaining  int
	ResetAfter time.Duration
	RetryAfter time.Duration
}

type RateLimiter struct {
	gcra       *throttled.GCRARateLimiterCtx
	perHandler bool
}

func New(cfg config.RateLimiter) (*RateLimiter, error) {
	if cfg.RatePerSec <= 0 {
		return nil, fmt.Errorf("%w: rate_per_sec must be greater than zero", ErrInvalidConfig)
	}
	if cfg.MaxBurst < 0 {
		return nil, fmt.Errorf("%w: max_burst must be non-negative", ErrInvalidConfig)
	}
	store, err := memstore.NewCtx(cfg.StoreMaxKeys)
	if err != nil {
		return nil, err
	}
	gcra, err := throttled.NewGCRARateLimiterCtx(store, throttled.RateQuota{
		MaxRate:  throttled.PerSec(cfg.RatePerSec),
		MaxBurst: cfg.MaxBurst,
	})
	if err != nil {
		return nil, err
	}
	return &RateLimiter{gcra: gcra, perHandler: cfg.PerHandler}, nil
}

// Key returns the limiter key of a user request. Handler is taken into
// account only for per handler limiters.
func (rl *RateLimiter) Key(user, handler string) string {
	if rl.perHandler {
		return user + "_" + handler
	}
	return user
}

// RateLimit reports whether the request under key must be rejected.
func (rl *RateLimiter) RateLimit(ctx context.Context, key string) (bool, Info, error) {
	limited, res, err := rl.gcra.RateLimitCtx(ctx, key, quantityPerCall)
	return limited, Info{
		Limit:      res.Limit,
		Remaining:  res.Remaining,
		ResetAfter: res.ResetAfter,
		RetryAfter: res.RetryAfter,
	}, err
}
