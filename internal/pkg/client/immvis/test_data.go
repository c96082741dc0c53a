package immvis

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/status"
)

type streamErrorType int8

const (
	streamErrNo streamErrorType = iota
	streamErrOpen
	streamErrRecv
)

func initGRPCClient(client immvisapi.ImmVisClient) *GRPCClient {
	return &GRPCClient{
		target:  DefaultTarget,
		state:   StateReady,
		client:  client,
		timeout: 3 * time.Second,
	}
}

// fakeRecvStream yields msgs, then err or io.EOF.
type fakeRecvStream[T any] struct {
	grpc.ClientStream

	msgs []*T
	err  error
}

func newFakeRecvStream[T any](msgs []*T, err error) *fakeRecvStream[T] {
	return &fakeRecvStream[T]{msgs: msgs, err: err}
}

func (s *fakeRecvStream[T]) Recv() (*T, error) {
	if len(s.msgs) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	m := s.msgs[0]
	s.msgs = s.msgs[1:]
	return m, nil
}

// fakeSendStream records sent dimensions and fails Recv until the send side is closed.
type fakeSendStream struct {
	grpc.ClientStream

	sent     []string
	closed   bool
	sendErr  error
	recvMsgs []*immvisapi.DimensionData
	recvErr  error
}

func (s *fakeSendStream) Send(d *immvisapi.Dimension) error {
	if s.closed {
		return status.Error(codes.Internal, "send after close")
	}
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, d.GetName())
	return nil
}

func (s *fakeSendStream) CloseSend() error {
	s.closed = true
	return nil
}

func (s *fakeSendStream) Recv() (*immvisapi.DimensionData, error) {
	if !s.closed {
		return nil, status.Error(codes.Internal, "recv before close send")
	}
	if len(s.recvMsgs) == 0 {
		if s.recvErr != nil {
			return nil, s.recvErr
		}
		return nil, io.EOF
	}
	m := s.recvMsgs[0]
	s.recvMsgs = s.recvMsgs[1:]
	return m, nil
}

func (s *fakeSendStream) CloseAndRecv() (*immvisapi.DimensionData, error) {
	if err := s.CloseSend(); err != nil {
		return nil, err
	}
	if s.recvErr != nil {
		return nil, s.recvErr
	}
	if len(s.recvMsgs) == 0 {
		return nil, io.EOF
	}
	return s.recvMsgs[0], nil
}

// fixtureConn is a Conn walking through states. Calls fail with invokeErr.
type fixtureConn struct {
	mu        sync.Mutex
	states    []connectivity.State
	connects  int
	closes    int
	invokes   int
	invokeErr error
}

func newFixtureConn(states ...connectivity.State) *fixtureConn {
	if len(states) == 0 {
		states = []connectivity.State{connectivity.Idle}
	}
	return &fixtureConn{
		states:    states,
		invokeErr: status.Error(codes.Unavailable, "fixture connection"),
	}
}

func (c *fixtureConn) dial(string, ...grpc.DialOption) (Conn, error) {
	return c, nil
}

func (c *fixtureConn) GetState() connectivity.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[0]
}

func (c *fixtureConn) setState(s connectivity.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states = []connectivity.State{s}
}

func (c *fixtureConn) Connect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connects++
}

func (c *fixtureConn) WaitForStateChange(ctx context.Context, s connectivity.State) bool {
	c.mu.Lock()
	if len(c.states) > 1 && c.states[0] == s {
		c.states = c.states[1:]
		c.mu.Unlock()
		return true
	}
	c.mu.Unlock()
	<-ctx.Done()
	return false
}

func (c *fixtureConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closes++
	c.states = []connectivity.State{connectivity.Shutdown}
	return nil
}

func (c *fixtureConn) Invoke(context.Context, string, any, any, ...grpc.CallOption) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invokes++
	return c.invokeErr
}

func (c *fixtureConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invokes++
	return nil, c.invokeErr
}

func (c *fixtureConn) counters() (connects, closes, invokes int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connects, c.closes, c.invokes
}
