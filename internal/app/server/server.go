package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/immvis/immvis-go/internal/api"
	"github.com/immvis/immvis-go/internal/app/config"
	"github.com/immvis/immvis-go/internal/app/mw"
)

// ReadyFunc reports whether the gateway can serve requests.
type ReadyFunc func() bool

// Server contains application dependencies.
type Server struct {
	config      *config.Server
	ready       ReadyFunc
	debugServer *http.Server
	httpServer  *http.Server

	rateLimiters mw.RateLimiters
}

// New returns a new Server. A nil ready reports the gateway as always ready.
func New(ctx context.Context, cfg *config.Server, registrar *api.Registrar, ready ReadyFunc) (*Server, error) {
	if ready == nil {
		ready = func() bool { return true }
	}
	s := &Server{config: cfg, ready: ready}

	if err := s.init(ctx, registrar); err != nil {
		return nil, fmt.Errorf("init server: %w", err)
	}

	return s, nil
}
