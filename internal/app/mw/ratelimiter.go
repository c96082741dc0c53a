package mw

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/immvis/immvis-go/internal/app/config"
	"github.com/immvis/immvis-go/internal/app/ratelimiter"
	"github.com/immvis/immvis-go/internal/app/types"
	"github.com/immvis/immvis-go/logger"
	"github.com/immvis/immvis-go/metric"
	"go.uber.org/zap"
)

// RateLimiterDefaultUser is used for requests without a user header and
// for users without a dedicated limiter.
const RateLimiterDefaultUser = "_"

// RateLimiters holds limiters by api and user.
type RateLimiters map[string]map[string]*ratelimiter.RateLimiter

// NewRateLimiters builds limiters for the configured apis, every api must be one of knownAPIs.
func NewRateLimiters(cfg config.ApiToRateLimiters, knownAPIs ...string) (RateLimiters, error) {
	known := make(map[string]struct{}, len(knownAPIs))
	for _, api := range knownAPIs {
		known[api] = struct{}{}
	}

	res := make(RateLimiters, len(cfg))
	for api, limiters := range cfg {
		if _, ok := known[api]; !ok {
			return nil, fmt.Errorf("invalid rate limiter api %q", api)
		}

		logger.Info("init default rate limiter", zap.String("api", api))
		def, err := ratelimiter.New(limiters.Default)
		if err != nil {
			return nil, fmt.Errorf("init %q default rate limiter: %w", api, err)
		}
		res[api] = map[string]*ratelimiter.RateLimiter{RateLimiterDefaultUser: def}

		for user, userCfg := range limiters.SpecialUsers {
			logger.Info("init user rate limiter", zap.String("api", api), zap.String("user", user))
			rl, err := ratelimiter.New(userCfg)
			if err != nil {
				return nil, fmt.Errorf("init %q rate limiter of user %q: %w", api, user, err)
			}
			res[api][user] = rl
		}
	}
	return res, nil
}

func handleUserRateLimit(
	ctx context.Context, userToRateLimiter map[string]*ratelimiter.RateLimiter, handler string,
) (bool, ratelimiter.Info, error) {
	user, err := types.GetUserKey(ctx)
	if err != nil {
		user = RateLimiterDefaultUser
	}

	limiter, ok := userToRateLimiter[user]
	if !ok {
		limiter = userToRateLimiter[RateLimiterDefaultUser]
	}

	limited, info, err := limiter.RateLimit(ctx, limiter.Key(user, handler))
	if limited {
		metric.ServerRateLimits.Inc()
	}
	return limited, info, err
}

func writeRateLimitHeaders(h http.Header, info ratelimiter.Info) {
	if v := info.Limit; v >= 0 {
		h.Set("X-RateLimit-Limit", strconv.Itoa(v))
	}
	if v := info.Remaining; v >= 0 {
		h.Set("X-RateLimit-Remaining", strconv.Itoa(v))
	}
	if v := info.ResetAfter; v >= 0 {
		h.Set("X-RateLimit-Reset", strconv.Itoa(int(math.Ceil(v.Seconds()))))
	}
	if v := info.RetryAfter; v >= 0 {
		h.Set("Retry-After", strconv.Itoa(int(math.Ceil(v.Seconds()))))
	}
}
