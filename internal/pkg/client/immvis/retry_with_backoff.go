package immvis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/immvis/immvis-go/logger"
	"github.com/immvis/immvis-go/metric"
	"go.uber.org/zap"
	"google.golang.org/grpc/status"
)

type retriableReqFn[T any] func() (T, bool, error)

type tryWithBackoffParams struct {
	method              string
	maxRetries          int
	initialRetryBackoff time.Duration
	maxRetryBackoff     time.Duration
}

// trySendRequestWithBackoff calls fn until it reports no retry or attempts run out.
// ok is false only when every attempt asked for a retry.
func trySendRequestWithBackoff[T any](ctx context.Context, fn retriableReqFn[T], params tryWithBackoffParams) (T, bool, error) {
	var (
		resp  T
		retry bool
		err   error
	)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 0
	bo.Multiplier = 2
	bo.InitialInterval = params.initialRetryBackoff
	bo.MaxInterval = params.maxRetryBackoff
	bo.Reset()
	// +1 is for the very first attempt before retries
	for i := 0; i < params.maxRetries+1; i++ {
		if i > 0 {
			metric.ClientRetries.WithLabelValues(params.method).Inc()
			logger.Warn("retrying immvis request",
				zap.String("method", params.method),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
		}

		resp, retry, err = fn()
		if !retry {
			return resp, true, err
		}

		if i == params.maxRetries {
			break
		}
		// no need to call next backoff if the initial interval is 0
		if bo.InitialInterval != 0 {
			sleepCtx(ctx, bo.NextBackOff())
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			var zero T
			return zero, true, status.FromContextError(ctxErr).Err()
		}
	}
	return resp, false, fmt.Errorf("send request: %w", err)
}

func sleepCtx(ctx context.Context, duration time.Duration) {
	if duration <= 0 {
		return
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
