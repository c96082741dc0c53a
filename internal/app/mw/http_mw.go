package mw

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/immvis/immvis-go/internal/api/httputil"
	"github.com/immvis/immvis-go/internal/app/types"
	"github.com/immvis/immvis-go/logger"
	"github.com/immvis/immvis-go/metric"
	"github.com/immvis/immvis-go/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

const componentHTTP = "http"

type routePatternKey struct{}

func setRoutePattern(ctx context.Context, pattern string) context.Context {
	if l := len(pattern); l > 1 && pattern[l-1] == '/' {
		pattern = pattern[:l-1]
	}
	return context.WithValue(ctx, routePatternKey{}, pattern)
}

func getRoutePattern(ctx context.Context) string {
	v, _ := ctx.Value(routePatternKey{}).(string)
	return v
}

func fullMethod(r *http.Request) string {
	return strings.Join([]string{r.Method, r.RequestURI, r.Proto}, " ")
}

func statusOrOK(code int) int {
	if code == 0 {
		return http.StatusOK
	}
	return code
}

// HTTPNotFoundInterceptor answers 404 for unknown routes and stores the route pattern of known ones.
func HTTPNotFoundInterceptor() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.RawPath
			if path == "" {
				path = r.URL.Path
			}

			rctx := chi.RouteContext(r.Context())
			tmp := chi.NewRouteContext()
			if rctx == nil || !rctx.Routes.Match(tmp, r.Method, path) {
				httputil.ProcessError(httputil.NewWriter(w), types.NewErrNotFound("route "+r.Method+" "+path))
				return
			}

			next.ServeHTTP(w, r.WithContext(setRoutePattern(r.Context(), tmp.RoutePattern())))
		}
		return http.HandlerFunc(fn)
	}
}

func HTTPRecoverInterceptor() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					handleRecover(fullMethod(req), r)
					http.Error(w, "recover: unexpected server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, req)
		}
		return http.HandlerFunc(fn)
	}
}

// HTTPUserInterceptor puts the caller name from types.UserHeader into the request context.
func HTTPUserInterceptor() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if user := strings.TrimSpace(r.Header.Get(types.UserHeader)); user != "" {
				r = r.WithContext(context.WithValue(r.Context(), types.UserKey{}, user))
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

func HTTPMetricInterceptor() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			route := getRoutePattern(ctx)

			metric.ServerRequestReceived.WithLabelValues(componentHTTP, route).Inc()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			metric.HandledIncomingRequest(ctx, componentHTTP, route,
				http.StatusText(statusOrOK(ww.Status())), time.Since(start))
		}
		return http.HandlerFunc(fn)
	}
}

// HTTPTraceInterceptor continues the trace of the caller when the request carries one.
func HTTPTraceInterceptor() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracing.StartSpan(ctx, getRoutePattern(ctx))
			defer span.End()

			ww := httputil.NewWriter(w)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if ww.StatusCode >= 400 {
				span.SetAttributes(
					attribute.Bool("error", true),
					attribute.String("error_message", ww.ErrorMessage),
					attribute.Int("status_code", ww.StatusCode),
				)
			}
		}
		return http.HandlerFunc(fn)
	}
}

func HTTPLogInterceptor(l *tracing.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			body, err := io.ReadAll(r.Body)
			if err != nil {
				l.Error(ctx, "failed to read request body", zap.Error(err))
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			reqLog := requestLog{
				header:     r.Header,
				fullMethod: fullMethod(r),
				body:       body,
			}
			if user, err := types.GetUserKey(ctx); err == nil {
				reqLog.user = user
			}
			logRequestBeforeHandler(ctx, l, reqLog)

			ww := httputil.NewWriter(w)
			start := time.Now()
			next.ServeHTTP(ww, r)

			reqLog.took = time.Since(start)
			reqLog.statusCode = statusOrOK(ww.StatusCode)
			reqLog.respSize = ww.BytesWritten
			reqLog.errMessage = ww.ErrorMessage
			logRequestAfterHandler(ctx, l, reqLog)
		}
		return http.HandlerFunc(fn)
	}
}

// HTTPRateLimitInterceptor rejects requests over the limit of their api with 429.
// Requests of apis without limiters pass through.
func HTTPRateLimitInterceptor(rateLimiters RateLimiters) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			uri, err := parseURI(r.RequestURI)
			if err != nil {
				logger.Error("failed to parse URI", zap.Error(err))
				http.NotFound(w, r)
				return
			}
			userToRateLimiter, ok := rateLimiters[uri.api]
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			limited, info, err := handleUserRateLimit(ctx, userToRateLimiter, uri.method)
			if err != nil {
				logger.Error("failed to rate limit request", zap.Error(err))
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			writeRateLimitHeaders(w.Header(), info)
			if limited {
				logger.Warn("request was rate limited", zap.String("api", uri.api), zap.String("method", uri.method))
				http.Error(w, "limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
