package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/immvis/immvis-go/internal/api/httputil"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	mock_immvis "github.com/immvis/immvis-go/internal/pkg/client/immvis/mock"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestServeGetKMeansCentroids(t *testing.T) {
	type mockArgs struct {
		numClusters int32
		names       []any
		resp        []*immvisapi.KMeansCentroid
		err         error
	}

	tests := []struct {
		name string

		reqBody      string
		wantRespBody string
		wantStatus   int

		mockArgs *mockArgs
	}{
		{
			name:    "ok",
			reqBody: `{"num_clusters":2,"dimensions":["x","y"]}`,
			mockArgs: &mockArgs{
				numClusters: 2,
				names:       []any{"x", "y"},
				resp: []*immvisapi.KMeansCentroid{
					{Data: []string{"1.0", "2.0"}},
					{Data: []string{"3.0", "4.0"}},
				},
			},
			wantRespBody: `{"centroids":[["1.0","2.0"],["3.0","4.0"]]}`,
			wantStatus:   http.StatusOK,
		},
		{
			name:       "err_zero_clusters",
			reqBody:    `{"num_clusters":0,"dimensions":["x"]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "err_negative_clusters",
			reqBody:    `{"num_clusters":-3,"dimensions":["x"]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "err_no_dimensions",
			reqBody:    `{"num_clusters":3}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "err_invalid_argument",
			reqBody: `{"num_clusters":200,"dimensions":["x"]}`,
			mockArgs: &mockArgs{
				numClusters: 200,
				names:       []any{"x"},
				err:         status.Error(codes.InvalidArgument, "too many clusters"),
			},
			wantRespBody: `{"message":"too many clusters"}`,
			wantStatus:   http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			clientMock := mock_immvis.NewMockClient(ctrl)
			if tt.mockArgs != nil {
				clientMock.EXPECT().GetKMeansCentroids(gomock.Any(), tt.mockArgs.numClusters, tt.mockArgs.names...).
					Return(tt.mockArgs.resp, tt.mockArgs.err).Times(1)
			}

			api := initTestAPI(clientMock, nil)
			req := httptest.NewRequest(http.MethodPost, "/immvis/v1/kmeans/centroids", strings.NewReader(tt.reqBody))

			httputil.DoTestHTTP(t, httputil.TestDataHTTP{
				Req:          req,
				Handler:      api.serveGetKMeansCentroids,
				WantRespBody: tt.wantRespBody,
				WantStatus:   tt.wantStatus,
			})
		})
	}
}

func TestServeGetKMeansClusterMapping(t *testing.T) {
	type mockArgs struct {
		resp []int
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
				resp: []int{0, 1, 1, 0},
			},
			wantRespBody: `{"mapping":[0,1,1,0]}`,
			wantStatus:   http.StatusOK,
		},
		{
			name: "err_unavailable",
			mockArgs: mockArgs{
				err: status.Error(codes.Unavailable, "down"),
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			clientMock := mock_immvis.NewMockClient(ctrl)
			clientMock.EXPECT().GetKMeansClusterMapping(gomock.Any(), int32(2), "x", "y").
				Return(tt.mockArgs.resp, tt.mockArgs.err).Times(1)

			api := initTestAPI(clientMock, nil)
			req := httptest.NewRequest(http.MethodPost, "/immvis/v1/kmeans/mapping",
				strings.NewReader(`{"num_clusters":2,"dimensions":["x","y"]}`))

			httputil.DoTestHTTP(t, httputil.TestDataHTTP{
				Req:          req,
				Handler:      api.serveGetKMeansClusterMapping,
				WantRespBody: tt.wantRespBody,
				WantStatus:   tt.wantStatus,
			})
		})
	}
}
