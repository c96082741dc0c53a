package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/immvis/immvis-go/internal/api/httputil"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	mock_immvis "github.com/immvis/immvis-go/internal/pkg/client/immvis/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestServeOpenDataset(t *testing.T) {
	type mockArgs struct {
		filePath string
		code     int32
		err      error
	}

	tests := []struct {
		name string

		reqBody      string
		wantRespBody string
		wantStatus   int
		wantSession  string

		mockArgs *mockArgs
	}{
		{
			name:    "ok",
			reqBody: `{"file_path":"/data/iris.csv"}`,
			mockArgs: &mockArgs{
				filePath: "/data/iris.csv",
				code:     0,
			},
			wantRespBody: `{"response_code":0,"session_id":"session-2"}`,
			wantStatus:   http.StatusOK,
			wantSession:  "session-2",
		},
		{
			name:        "err_empty_path",
			reqBody:     `{"file_path":"  "}`,
			wantStatus:  http.StatusBadRequest,
			wantSession: "session-1",
		},
		{
			name:        "err_bad_json",
			reqBody:     `{"file_path":`,
			wantStatus:  http.StatusBadRequest,
			wantSession: "session-1",
		},
		{
			name:    "err_not_initialized",
			reqBody: `{"file_path":"/data/iris.csv"}`,
			mockArgs: &mockArgs{
				filePath: "/data/iris.csv",
				err:      immvis.ErrNotInitialized,
			},
			wantRespBody: `{"message":"immvis client is not initialized"}`,
			wantStatus:   http.StatusServiceUnavailable,
			wantSession:  "session-1",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			clientMock := mock_immvis.NewMockClient(ctrl)
			if tt.mockArgs != nil {
				clientMock.EXPECT().OpenDatasetFromFile(gomock.Any(), tt.mockArgs.filePath).
					Return(tt.mockArgs.code, tt.mockArgs.err).Times(1)
			}

			api := initTestAPI(clientMock, nil)
			req := httptest.NewRequest(http.MethodPost, "/immvis/v1/dataset/open", strings.NewReader(tt.reqBody))

			httputil.DoTestHTTP(t, httputil.TestDataHTTP{
				Req:          req,
				Handler:      api.serveOpenDataset,
				WantRespBody: tt.wantRespBody,
				WantStatus:   tt.wantStatus,
			})
			assert.Equal(t, tt.wantSession, api.session())
		})
	}
}

func TestServeGetDatasetDimensions(t *testing.T) {
	type mockArgs struct {
		resp []*immvisapi.DimensionInfo
		err  error
	}

	tests := []struct {
		name string

		wantRespBody string
		wantStatus   int

		mockArgs mockArgs
	}{
		{
			name: "ok",
			mockArgs: mockArgs{
				resp: []*immvisapi.DimensionInfo{
					{Name: "sepal_length", Type: "float"},
					{Name: "species", Type: "string"},
				},
			},
			wantRespBody: `{"dimensions":[{"name":"sepal_length","type":"float"},{"name":"species","type":"string"}]}`,
			wantStatus:   http.StatusOK,
		},
		{
			name: "ok_empty",
			mockArgs: mockArgs{
				resp: []*immvisapi.DimensionInfo{},
			},
			wantRespBody: `{"dimensions":[]}`,
			wantStatus:   http.StatusOK,
		},
		{
			name: "err_unavailable",
			mockArgs: mockArgs{
				err: status.Error(codes.Unavailable, "connection refused"),
			},
			wantRespBody: `{"message":"connection refused"}`,
			wantStatus:   http.StatusServiceUnavailable,
		},
		{
			name: "err_client",
			mockArgs: mockArgs{
				err: errors.New("client error"),
			},
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			clientMock := mock_immvis.NewMockClient(ctrl)
			clientMock.EXPECT().GetDatasetDimensions(gomock.Any()).
				Return(tt.mockArgs.resp, tt.mockArgs.err).Times(1)

			api := initTestAPI(clientMock, nil)
			req := httptest.NewRequest(http.MethodGet, "/immvis/v1/dataset/dimensions", http.NoBody)

			httputil.DoTestHTTP(t, httputil.TestDataHTTP{
				Req:          req,
				Handler:      api.serveGetDatasetDimensions,
				WantRespBody: tt.wantRespBody,
				WantStatus:   tt.wantStatus,
			})
		})
	}
}

func TestServeGetDatasetRows(t *testing.T) {
	rows := []*immvisapi.DataRow{
		{Data: []string{"5.1", "3.5"}},
		{Data: nil},
	}
	const wantRows = `{"rows":[["5.1","3.5"],[]]}`

	tests := []struct {
		name    string
		target  string
		handler func(api *API) http.HandlerFunc
		expect  func(m *mock_immvis.MockClient) *gomock.Call

		wantRespBody string
		wantStatus   int
	}{
		{
			name:   "values",
			target: "/immvis/v1/dataset/values",
			handler: func(api *API) http.HandlerFunc {
				return api.serveGetDatasetValues
			},
			expect: func(m *mock_immvis.MockClient) *gomock.Call {
				return m.EXPECT().GetDatasetValues(gomock.Any()).Return(rows, nil)
			},
			wantRespBody: wantRows,
			wantStatus:   http.StatusOK,
		},
		{
			name:   "correlation_matrix",
			target: "/immvis/v1/dataset/correlation_matrix",
			handler: func(api *API) http.HandlerFunc {
				return api.serveGetCorrelationMatrix
			},
			expect: func(m *mock_immvis.MockClient) *gomock.Call {
				return m.EXPECT().GetCorrelationMatrix(gomock.Any()).Return(rows, nil)
			},
			wantRespBody: wantRows,
			wantStatus:   http.StatusOK,
		},
		{
			name:   "err_values_connection",
			target: "/immvis/v1/dataset/values",
			handler: func(api *API) http.HandlerFunc {
				return api.serveGetDatasetValues
			},
			expect: func(m *mock_immvis.MockClient) *gomock.Call {
				return m.EXPECT().GetDatasetValues(gomock.Any()).Return(nil, immvis.ErrConnection)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "err_matrix_malformed",
			target: "/immvis/v1/dataset/correlation_matrix",
			handler: func(api *API) http.HandlerFunc {
				return api.serveGetCorrelationMatrix
			},
			expect: func(m *mock_immvis.MockClient) *gomock.Call {
				return m.EXPECT().GetCorrelationMatrix(gomock.Any()).Return(nil, immvis.ErrMalformedResponse)
			},
			wantStatus: http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			clientMock := mock_immvis.NewMockClient(ctrl)
			tt.expect(clientMock).Times(1)

			api := initTestAPI(clientMock, nil)

			httputil.DoTestHTTP(t, httputil.TestDataHTTP{
				Req:          httptest.NewRequest(http.MethodGet, tt.target, http.NoBody),
				Handler:      tt.handler(api),
				WantRespBody: tt.wantRespBody,
				WantStatus:   tt.wantStatus,
			})
		})
	}
}
