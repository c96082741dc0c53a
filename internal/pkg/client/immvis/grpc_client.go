package immvis

import (
	"context"
	"fmt"
	"net"
	"path"
	"strconv"
	"sync"
	"time"

	grpc_mw "github.com/grpc-ecosystem/go-grpc-middleware"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	"github.com/immvis/immvis-go/logger"
	"github.com/immvis/immvis-go/metric"
	"github.com/immvis/immvis-go/tracing"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

func processClientRequestUnaryInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	basePath := path.Base(method)
	metric.ClientRequestSent.WithLabelValues(basePath).Inc()
	start := time.Now()
	err := invoker(ctx, method, req, reply, cc, opts...)
	took := time.Since(start)
	statusCodeStr := status.Code(err).String()
	metric.ClientResponseReceived.WithLabelValues(basePath, statusCodeStr).Inc()
	metric.ClientRequestDuration.WithLabelValues(basePath, statusCodeStr).Observe(took.Seconds())
	return err
}

func processClientRequestStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	basePath := path.Base(method)
	metric.ClientRequestSent.WithLabelValues(basePath).Inc()
	stream, err := streamer(ctx, desc, cc, method, opts...)
	if err != nil {
		metric.ClientResponseReceived.WithLabelValues(basePath, status.Code(err).String()).Inc()
	}
	return stream, err
}

func traceUnaryInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(tracing.InjectOutgoing(ctx), method, req, reply, cc, opts...)
}

func traceStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(tracing.InjectOutgoing(ctx), desc, cc, method, opts...)
}

func dialGRPC(target string, opts ...grpc.DialOption) (Conn, error) {
	return grpc.NewClient(target, opts...)
}

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	target   string
	dial     DialFunc
	dialOpts []grpc.DialOption

	timeout             time.Duration
	reqRetries          int
	initialRetryBackoff time.Duration
	maxRetryBackoff     time.Duration

	mu     sync.RWMutex
	state  State
	conn   Conn
	client immvisapi.ImmVisClient
}

// New creates a client for host:port. Empty host and non-positive port fall back to defaults.
// No connection is opened until Initialize.
func New(host string, port int, params ClientParams) *GRPCClient {
	if host == "" {
		host = DefaultHost
	}
	if port <= 0 {
		port = DefaultPort
	}
	return NewFromTarget(net.JoinHostPort(host, strconv.Itoa(port)), params)
}

// NewFromTarget creates a client for a grpc target, DefaultTarget if empty.
func NewFromTarget(target string, params ClientParams) *GRPCClient {
	if target == "" {
		target = DefaultTarget
	}

	unaryInterceptors := []grpc.UnaryClientInterceptor{
		processClientRequestUnaryInterceptor,
		traceUnaryInterceptor,
	}
	streamInterceptors := []grpc.StreamClientInterceptor{
		processClientRequestStreamInterceptor,
		traceStreamInterceptor,
	}
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(grpc_mw.ChainUnaryClient(unaryInterceptors...)),
		grpc.WithStreamInterceptor(grpc_mw.ChainStreamClient(streamInterceptors...)),
	}
	if params.MaxRecvMsgSize > 0 {
		opts = append(opts, grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(params.MaxRecvMsgSize),
		))
	}
	if params.GRPCKeepaliveParams != nil {
		kp := keepalive.ClientParameters{
			Time:                params.GRPCKeepaliveParams.Time,
			Timeout:             params.GRPCKeepaliveParams.Timeout,
			PermitWithoutStream: params.GRPCKeepaliveParams.PermitWithoutStream,
		}
		opts = append(opts, grpc.WithKeepaliveParams(kp))
	}
	opts = append(opts, params.DialOptions...)

	timeout := params.Timeout
	if timeout < 0 {
		logger.Warn("setting requests timeout to 0", zap.Duration("timeout", params.Timeout))
		timeout = 0
	}
	reqRetries := params.MaxRetries
	if reqRetries < 0 {
		logger.Warn("setting requests max retries to 0", zap.Int("max_retries", params.MaxRetries))
		reqRetries = 0
	}
	initialRetryBackoff := params.InitialRetryBackoff
	if initialRetryBackoff < 0 {
		logger.Warn("setting requests initial retry backoff to 0", zap.Duration("initial_retry_backoff", params.InitialRetryBackoff))
		initialRetryBackoff = 0
	}
	maxRetryBackoff := params.MaxRetryBackoff
	if maxRetryBackoff < initialRetryBackoff {
		maxRetryBackoff = initialRetryBackoff
	}

	dial := params.Dial
	if dial == nil {
		dial = dialGRPC
	}

	return &GRPCClient{
		target:              target,
		dial:                dial,
		dialOpts:            opts,
		timeout:             timeout,
		reqRetries:          reqRetries,
		initialRetryBackoff: initialRetryBackoff,
		maxRetryBackoff:     maxRetryBackoff,
	}
}

func (c *GRPCClient) Target() string {
	return c.target
}

func (c *GRPCClient) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// ConnState returns the connectivity state of the connection, or the client
// state when there is no connection.
func (c *GRPCClient) ConnState() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.conn == nil {
		return c.state.String()
	}
	return c.conn.GetState().String()
}

// Initialize releases the current connection and dials a new one.
func (c *GRPCClient) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.releaseLocked(); err != nil {
		logger.Warn("failed to close previous immvis connection", zap.Error(err))
	}

	conn, err := c.dial(c.target, c.dialOpts...)
	if err != nil {
		return fmt.Errorf("failed to dial immvis target=%s: %w", c.target, err)
	}
	conn.Connect()

	c.conn = conn
	c.client = immvisapi.NewImmVisClient(conn)
	c.state = StateReady

	logger.Info("immvis client initialized", zap.String("target", c.target))
	return nil
}

// Release closes the connection. Calling it on a released client does nothing.
func (c *GRPCClient) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.releaseLocked()
}

func (c *GRPCClient) releaseLocked() error {
	if c.state == StateUninitialized && c.conn == nil {
		return nil
	}
	var err error
	if c.conn != nil {
		err = c.conn.Close()
	}
	c.conn = nil
	c.client = nil
	c.state = StateUninitialized
	logger.Info("immvis client released", zap.String("target", c.target))
	return err
}

// IsReady reports whether the connection is ready right now.
// The next call may still fail.
func (c *GRPCClient) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == StateReady && c.conn != nil && c.conn.GetState() == connectivity.Ready
}

// WaitForReady blocks until the connection is ready, ctx is done or the connection shuts down.
func (c *GRPCClient) WaitForReady(ctx context.Context) error {
	c.mu.RLock()
	conn, state := c.conn, c.state
	c.mu.RUnlock()
	if state != StateReady || conn == nil {
		return ErrNotInitialized
	}

	for {
		s := conn.GetState()
		switch s {
		case connectivity.Ready:
			return nil
		case connectivity.Shutdown:
			return fmt.Errorf("%w: connection is shut down", ErrConnection)
		case connectivity.Idle:
			conn.Connect()
		}
		if !conn.WaitForStateChange(ctx, s) {
			return fmt.Errorf("wait for ready state=%s: %w", s, ctx.Err())
		}
	}
}

func (c *GRPCClient) stub() (immvisapi.ImmVisClient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state != StateReady || c.client == nil {
		return nil, ErrNotInitialized
	}
	return c.client, nil
}

type grpcReqFn[T any] func(context.Context, immvisapi.ImmVisClient) (T, error)

// sendRequest runs reqFn with retries while the service is unavailable.
// The stub is captured once so Release aborts the call instead of waiting for it.
func sendRequest[T any](ctx context.Context, c *GRPCClient, method string, reqFn grpcReqFn[T]) (T, error) {
	var zero T

	ctx, span := tracing.StartSpan(ctx, "immvis."+method)
	defer span.End()

	client, err := c.stub()
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		return zero, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	tryFn := func() (T, bool, error) {
		resp, err := reqFn(ctx, client)
		if err == nil {
			return resp, false, nil
		}
		if status.Code(err) != codes.Unavailable {
			return resp, false, err
		}
		return resp, true, err
	}

	resp, ok, err := trySendRequestWithBackoff(ctx, tryFn,
		tryWithBackoffParams{
			method:              method,
			maxRetries:          c.reqRetries,
			initialRetryBackoff: c.initialRetryBackoff,
			maxRetryBackoff:     c.maxRetryBackoff,
		},
	)
	if !ok {
		err = fmt.Errorf("%w: %s: %w", ErrConnection, method, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return zero, err
	}
	return resp, nil
}
