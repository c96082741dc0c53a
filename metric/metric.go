package metric

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	immvisNS     = "immvis"
	serverSubsys = "server"
	clientSubsys = "client"
	cacheSubsys  = "cache"

	componentLabel  = "component"
	methodLabel     = "method"
	statusCodeLabel = "status_code"
	opLabel         = "op"
	layerLabel      = "layer"
)

const (
	CacheLayerInmemory = "inmemory"
	CacheLayerRedis    = "redis"
)

var (
	defaultBuckets = prometheus.ExponentialBuckets(0.002, 2, 16)

	// server metrics
	ServerRequestReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: serverSubsys,
		Name:      "requests_received_total",
		Help:      "",
	}, []string{componentLabel, methodLabel})
	ServerRequestHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: serverSubsys,
		Name:      "requests_handled_total",
		Help:      "",
	}, []string{componentLabel, methodLabel, statusCodeLabel})
	ServerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: immvisNS,
		Subsystem: serverSubsys,
		Name:      "requests_duration_seconds",
		Help:      "",
		Buckets:   defaultBuckets,
	}, []string{componentLabel, methodLabel, statusCodeLabel})
	ServerRequestPanics = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: serverSubsys,
		Name:      "requests_panics_total",
		Help:      "",
	})
	ServerRateLimits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: serverSubsys,
		Name:      "requests_rate_limits_total",
		Help:      "",
	})
	ServerParallelLimits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: serverSubsys,
		Name:      "requests_parallel_limits_total",
		Help:      "",
	})

	// cache metrics
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: cacheSubsys,
		Name:      "hits_total",
		Help:      "",
	}, []string{layerLabel})
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: cacheSubsys,
		Name:      "misses_total",
		Help:      "",
	}, []string{layerLabel})

	// client metrics
	ClientRequestSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: clientSubsys,
		Name:      "requests_sent_total",
		Help:      "",
	}, []string{methodLabel})
	ClientResponseReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: clientSubsys,
		Name:      "responses_received_total",
		Help:      "",
	}, []string{methodLabel, statusCodeLabel})
	ClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: immvisNS,
		Subsystem: clientSubsys,
		Name:      "requests_sent_duration_seconds",
		Help:      "",
		Buckets:   defaultBuckets,
	}, []string{methodLabel, statusCodeLabel})
	ClientStreamError = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: clientSubsys,
		Name:      "stream_errors_total",
		Help:      "",
	}, []string{methodLabel, opLabel})
	ClientMalformedResponse = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: clientSubsys,
		Name:      "malformed_responses_total",
		Help:      "",
	}, []string{methodLabel})
	ClientRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: immvisNS,
		Subsystem: clientSubsys,
		Name:      "retries_total",
		Help:      "",
	}, []string{methodLabel})
)

// HandledIncomingRequest handles metrics for processed incoming request.
func HandledIncomingRequest(ctx context.Context, component, method, statusCode string, took time.Duration) {
	ctxErr := ctx.Err()
	if errors.Is(ctxErr, context.Canceled) {
		statusCode = context.Canceled.Error()
	} else if errors.Is(ctxErr, context.DeadlineExceeded) {
		statusCode = context.DeadlineExceeded.Error()
	}
	ServerRequestDuration.WithLabelValues(component, method, statusCode).Observe(took.Seconds())
	ServerRequestHandled.WithLabelValues(component, method, statusCode).Inc()
}
