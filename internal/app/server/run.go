package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/immvis/immvis-go/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run starts accepting new connections until the context is done.
func (s *Server) Run(ctx context.Context) error {
	httpLis, err := net.Listen("tcp", s.config.HTTPAddr)
	if err != nil {
		return err
	}
	debugLis, err := net.Listen("tcp", s.config.DebugAddr)
	if err != nil {
		_ = httpLis.Close()
		return err
	}
	return s.serve(ctx, httpLis, debugLis)
}

func (s *Server) serve(ctx context.Context, httpLis, debugLis net.Listener) error {
	errWg, ctx := errgroup.WithContext(ctx)

	errWg.Go(func() error {
		return ignoreClosed(s.httpServer.Serve(httpLis))
	})
	errWg.Go(func() error {
		return ignoreClosed(s.debugServer.Serve(debugLis))
	})

	logger.Info("app started",
		zap.String("http", httpLis.Addr().String()),
		zap.String("debug", debugLis.Addr().String()),
	)

	// graceful shutdown
	errWg.Go(func() error {
		<-ctx.Done()
		s.stop()
		return nil
	})

	return errWg.Wait()
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// stop shuts the HTTP servers down, waiting for active requests up to shutdownTimeout.
func (s *Server) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var wg sync.WaitGroup
	for name, srv := range map[string]*http.Server{"http": s.httpServer, "debug": s.debugServer} {
		wg.Add(1)
		go func(name string, srv *http.Server) {
			defer wg.Done()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("shutting down the server", zap.String("server", name), zap.Error(err))
				return
			}
			logger.Warn("server gracefully stopped", zap.String("server", name))
		}(name, srv)
	}
	wg.Wait()
}
