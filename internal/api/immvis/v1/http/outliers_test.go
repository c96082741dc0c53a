package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/immvis/immvis-go/internal/api/httputil"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis"
	mock_immvis "github.com/immvis/immvis-go/internal/pkg/client/immvis/mock"
	"go.uber.org/mock/gomock"
)

func TestServeGetOutliersMapping(t *testing.T) {
	type mockArgs struct {
		names []any
		resp  []bool
		err   error
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
			reqBody: `{"dimensions":["a","b"]}`,
			mockArgs: &mockArgs{
				names: []any{"a", "b"},
				resp:  []bool{true, false, false},
			},
			wantRespBody: `{"outliers":[true,false,false]}`,
			wantStatus:   http.StatusOK,
		},
		{
			name:    "ok_empty",
			reqBody: `{"dimensions":["a"]}`,
			mockArgs: &mockArgs{
				names: []any{"a"},
				resp:  []bool{},
			},
			wantRespBody: `{"outliers":[]}`,
			wantStatus:   http.StatusOK,
		},
		{
			name:       "err_missing_dimensions",
			reqBody:    `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "err_blank_name",
			reqBody:    `{"dimensions":[" "]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "err_malformed",
			reqBody: `{"dimensions":["a"]}`,
			mockArgs: &mockArgs{
				names: []any{"a"},
				err:   immvis.ErrMalformedResponse,
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
			if tt.mockArgs != nil {
				clientMock.EXPECT().GetOutliersMapping(gomock.Any(), tt.mockArgs.names...).
					Return(tt.mockArgs.resp, tt.mockArgs.err).Times(1)
			}

			api := initTestAPI(clientMock, nil)
			req := httptest.NewRequest(http.MethodPost, "/immvis/v1/outliers", strings.NewReader(tt.reqBody))

			httputil.DoTestHTTP(t, httputil.TestDataHTTP{
				Req:          req,
				Handler:      api.serveGetOutliersMapping,
				WantRespBody: tt.wantRespBody,
				WantStatus:   tt.wantStatus,
			})
		})
	}
}
