package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/immvis/immvis-go/internal/app/types"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestProcessError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid_field",
			err:        types.NewErrInvalidRequestField("empty file_path"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"invalid request field: empty file_path"}`,
		},
		{
			name:       "too_many_requests",
			err:        types.ErrTooManyRequests,
			wantStatus: http.StatusTooManyRequests,
			wantBody:   `{"message":"too many parallel requests"}`,
		},
		{
			name:       "not_initialized",
			err:        immvis.ErrNotInitialized,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "connection",
			err:        fmt.Errorf("%w: %w", immvis.ErrConnection, status.Error(codes.Unavailable, "down")),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "malformed",
			err:        fmt.Errorf("%w: bad token", immvis.ErrMalformedResponse),
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"message":"malformed immvis response: bad token"}`,
		},
		{
			name:       "grpc_not_found",
			err:        status.Error(codes.NotFound, "dimension \"x\" not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"dimension \"x\" not found"}`,
		},
		{
			name:       "grpc_deadline",
			err:        status.FromContextError(context.DeadlineExceeded).Err(),
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "other",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"boom"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			w := NewWriter(rec)
			ProcessError(w, tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantStatus, w.StatusCode)
			require.Equal(t, contentTypeJSON, rec.Header().Get(headerContentType))
			if tt.wantBody != "" {
				require.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestProcessErrorNil(t *testing.T) {
	rec := httptest.NewRecorder()
	ProcessError(NewWriter(rec), nil)
	require.Empty(t, rec.Body.String())
}
