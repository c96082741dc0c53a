package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/immvis/immvis-go/internal/api"
	immvis_v1_api "github.com/immvis/immvis-go/internal/api/immvis/v1"
	"github.com/immvis/immvis-go/internal/app/config"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	mock_immvis "github.com/immvis/immvis-go/internal/pkg/client/immvis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, cfg *config.Server, ready ReadyFunc) (*Server, *mock_immvis.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock_immvis.NewMockClient(ctrl)

	registrar := api.NewRegistrar(immvis_v1_api.New(client, nil, immvis_v1_api.Options{CacheTTL: time.Minute}))
	s, err := New(context.Background(), cfg, registrar, ready)
	require.NoError(t, err)
	return s, client
}

func TestHTTPServerRoutes(t *testing.T) {
	t.Parallel()

	s, client := newTestServer(t, &config.Server{
		CORS: &config.CORS{},
	}, nil)
	client.EXPECT().GetDatasetDimensions(gomock.Any()).
		Return([]*immvisapi.DimensionInfo{{Name: "a", Type: "float"}}, nil).Times(1)

	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/immvis/v1/dataset/dimensions", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"dimensions":[{"name":"a","type":"float"}]}`, w.Body.String())

	w = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/immvis/v1/unknown", http.NoBody))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"message":"not found: route GET /immvis/v1/unknown"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodOptions, "/immvis/v1/outliers", http.NoBody)
	req.Header.Set("Origin", "http://viewer.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPServerRateLimit(t *testing.T) {
	t.Parallel()

	s, client := newTestServer(t, &config.Server{
		RateLimiters: config.ApiToRateLimiters{
			"immvis": {Default: config.RateLimiter{RatePerSec: 1}},
		},
	}, nil)
	client.EXPECT().GetDatasetValues(gomock.Any()).Return(nil, nil).Times(1)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/immvis/v1/dataset/values", http.NoBody))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewInvalidRateLimiters(t *testing.T) {
	t.Parallel()

	registrar := api.NewRegistrar(immvis_v1_api.New(nil, nil, immvis_v1_api.Options{CacheTTL: time.Minute}))
	_, err := New(context.Background(), &config.Server{
		RateLimiters: config.ApiToRateLimiters{
			"dashboards": {Default: config.RateLimiter{RatePerSec: 1}},
		},
	}, registrar, nil)
	require.Error(t, err)
}

func TestDebugServerHealthEndpoints(t *testing.T) {
	t.Parallel()

	var ready atomic.Bool
	s, _ := newTestServer(t, &config.Server{}, ready.Load)

	statusOf := func(path string) int {
		w := httptest.NewRecorder()
		s.debugServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, statusOf("/live"))
	assert.Equal(t, http.StatusServiceUnavailable, statusOf("/ready"))
	ready.Store(true)
	assert.Equal(t, http.StatusOK, statusOf("/ready"))
	assert.Equal(t, http.StatusOK, statusOf("/metrics"))
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, &config.Server{}, nil)

	httpLis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	debugLis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.serve(ctx, httpLis, debugLis)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + debugLis.Addr().String() + "/live")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}
