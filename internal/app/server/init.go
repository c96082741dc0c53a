package server

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/immvis/immvis-go/internal/api"
	"github.com/immvis/immvis-go/internal/app/mw"
	"github.com/immvis/immvis-go/logger"
	"github.com/immvis/immvis-go/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultCORSAllowedOrigins = "*"
	maxHTTPHeaderBytes        = 1 << 12 // 4 KiB
)

var defaultCORSAllowedMethods = []string{"HEAD", "GET", "POST"}

func (s *Server) init(ctx context.Context, registrar *api.Registrar) error {
	if len(s.config.RateLimiters) > 0 {
		limiters, err := mw.NewRateLimiters(s.config.RateLimiters, registrar.APIs()...)
		if err != nil {
			return err
		}
		s.rateLimiters = limiters
	}

	s.prepareHTTPServer(ctx, registrar)
	s.prepareDebugServer(ctx)

	return nil
}

// setupCORS applies CORS policies set in config to the provided mux.
func (s *Server) setupCORS(mux *chi.Mux) {
	c := s.config.CORS
	allowedOrigins := c.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{defaultCORSAllowedOrigins}
	}
	allowedMethods := c.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = defaultCORSAllowedMethods
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:     allowedOrigins,
		AllowedMethods:     allowedMethods,
		AllowedHeaders:     c.AllowedHeaders,
		ExposedHeaders:     c.ExposedHeaders,
		AllowCredentials:   c.AllowCredentials,
		MaxAge:             c.MaxAge,
		OptionsPassthrough: c.OptionsPassthrough,
	}))
}

// prepareHTTPServer prepares the gateway server with CORS policies and interceptors applied.
func (s *Server) prepareHTTPServer(ctx context.Context, registrar *api.Registrar) {
	mux := chi.NewMux()
	if s.config.CORS != nil {
		s.setupCORS(mux)
	}
	interceptors := chi.Middlewares{
		mw.HTTPNotFoundInterceptor(),
		mw.HTTPRecoverInterceptor(),
		mw.HTTPUserInterceptor(),
		mw.HTTPMetricInterceptor(),
		mw.HTTPTraceInterceptor(),
		mw.HTTPLogInterceptor(tracing.NewLogger(logger.Instance)),
	}
	if len(s.rateLimiters) > 0 {
		interceptors = append(interceptors, mw.HTTPRateLimitInterceptor(s.rateLimiters))
	}
	mux.Use(interceptors...)

	registrar.RegisterHTTPHandlers(mux)

	s.httpServer = s.makeHTTPServer(ctx, mux)
}

// prepareDebugServer prepares the server of metrics, health checks and pprof.
func (s *Server) prepareDebugServer(ctx context.Context) {
	mux := chi.NewMux()
	mux.Use(mw.HTTPRecoverInterceptor())
	mux.Handle("/metrics", promhttp.Handler())
	serveHealth(mux, s.ready)
	servePprof(mux)
	s.debugServer = s.makeHTTPServer(ctx, mux)
}

func (s *Server) makeHTTPServer(ctx context.Context, mux *chi.Mux) *http.Server {
	return &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: s.config.HTTPReadHeaderTimeout,
		ReadTimeout:       s.config.HTTPReadTimeout,
		WriteTimeout:      s.config.HTTPWriteTimeout,
		MaxHeaderBytes:    maxHTTPHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
}
