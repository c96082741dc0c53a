package immvis

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	mock "github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_GRPCClient_GetOutliersMapping(t *testing.T) {
	tests := []struct {
		name string

		names         []string
		data          []string
		sendErr       error
		recvErr       error
		want          []bool
		wantErr       error
		wantMalformed bool
	}{
		{
			name:  "ok",
			names: []string{"a", "b"},
			data:  []string{"true", "false"},
			want:  []bool{true, false},
		},
		{
			name:  "ok_python_bools",
			names: []string{"a"},
			data:  []string{"True", "False", " True "},
			want:  []bool{true, false, true},
		},
		{
			name:  "ok_empty",
			names: []string{"a"},
			data:  []string{},
			want:  []bool{},
		},
		{
			name:          "err_malformed",
			names:         []string{"a"},
			data:          []string{"true", "maybe"},
			wantMalformed: true,
		},
		{
			name:          "err_malformed_numeric_bool",
			names:         []string{"a"},
			data:          []string{"1", "0"},
			wantMalformed: true,
		},
		{
			name:    "err_recv",
			names:   []string{"a"},
			recvErr: errors.New("recv error"),
			wantErr: errors.New("recv error"),
		},
		{
			name:  "send_eof_surfaces_recv_status",
			names: []string{"a", "b"},
			// the server ended the call early, its status comes from CloseAndRecv
			sendErr: io.EOF,
			recvErr: errors.New("server status"),
			wantErr: errors.New("server status"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stream := &fakeSendStream{
				sendErr: tt.sendErr,
				recvErr: tt.recvErr,
			}
			if tt.data != nil {
				stream.recvMsgs = []*immvisapi.DimensionData{{Data: tt.data}}
			}

			ctrl := gomock.NewController(t)
			immvisMock := mock.NewMockImmVisClient(ctrl)
			immvisMock.EXPECT().GetOutlierMapping(gomock.Any()).Return(stream, nil).Times(1)

			c := initGRPCClient(immvisMock)

			got, err := c.GetOutliersMapping(context.Background(), tt.names...)
			if tt.wantMalformed {
				require.ErrorIs(t, err, ErrMalformedResponse)
				require.Nil(t, got)
				return
			}
			require.Equal(t, tt.wantErr, err)
			if tt.wantErr != nil {
				return
			}
			require.Equal(t, tt.names, stream.sent)
			require.True(t, stream.closed)
			require.Equal(t, tt.want, got)
		})
	}
}
