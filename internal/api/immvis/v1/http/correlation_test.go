package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/immvis/immvis-go/internal/api/httputil"
	mock_immvis "github.com/immvis/immvis-go/internal/pkg/client/immvis/mock"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestServeGetCorrelation(t *testing.T) {
	type mockArgs struct {
		resp float32
		err  error
	}

	tests := []struct {
		name string

		reqBody      string
		wantRespBody string
		wantStatus   int

		mockArgs *mockArgs
	}{
		{
			name:         "ok",
			reqBody:      `{"dimension1":"a","dimension2":"b"}`,
			mockArgs:     &mockArgs{resp: 0.5},
			wantRespBody: `{"result":0.5}`,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "ok_zero",
			reqBody:      `{"dimension1":"a","dimension2":"b"}`,
			mockArgs:     &mockArgs{},
			wantRespBody: `{"result":0}`,
			wantStatus:   http.StatusOK,
		},
		{
			name:       "err_missing_second",
			reqBody:    `{"dimension1":"a"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "err_not_found",
			reqBody: `{"dimension1":"a","dimension2":"b"}`,
			mockArgs: &mockArgs{
				err: status.Error(codes.NotFound, "dimension b not found"),
			},
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			clientMock := mock_immvis.NewMockClient(ctrl)
			if tt.mockArgs != nil {
				clientMock.EXPECT().GetCorrelationBetweenTwoDimensions(gomock.Any(), "a", "b").
					Return(tt.mockArgs.resp, tt.mockArgs.err).Times(1)
			}

			api := initTestAPI(clientMock, nil)
			req := httptest.NewRequest(http.MethodPost, "/immvis/v1/correlation", strings.NewReader(tt.reqBody))

			httputil.DoTestHTTP(t, httputil.TestDataHTTP{
				Req:          req,
				Handler:      api.serveGetCorrelation,
				WantRespBody: tt.wantRespBody,
				WantStatus:   tt.wantStatus,
			})
		})
	}
}
