package immvis

import (
	"context"
	"errors"
	"testing"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	mock "github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_GRPCClient_GetKMeansCentroids(t *testing.T) {
	centroids := []*immvisapi.KMeansCentroid{
		{Data: []string{"5.0", "3.4"}},
		{Data: []string{"6.8", "3.0"}},
		{Data: []string{"5.9", "2.7"}},
	}
	wantReq := &immvisapi.KMeansRequest{
		NumClusters: 3,
		Dimensions: []*immvisapi.Dimension{
			{Name: "sepal_length"},
			{Name: "sepal_width"},
		},
	}

	ctrl := gomock.NewController(t)
	immvisMock := mock.NewMockImmVisClient(ctrl)
	immvisMock.EXPECT().GetKMeansCentroids(gomock.Any(), wantReq).
		Return(newFakeRecvStream(centroids, nil), nil).Times(1)

	c := initGRPCClient(immvisMock)

	got, err := c.GetKMeansCentroids(context.Background(), 3, "sepal_length", "sepal_width")
	require.NoError(t, err)
	require.Equal(t, centroids, got)
}

func Test_GRPCClient_GetKMeansClusterMapping(t *testing.T) {
	tests := []struct {
		name string

		resp          *immvisapi.DimensionData
		respErr       error
		want          []int
		wantMalformed bool
	}{
		{
			name: "ok",
			resp: &immvisapi.DimensionData{Data: []string{"0", "2", "1", "0"}},
			want: []int{0, 2, 1, 0},
		},
		{
			name: "ok_empty",
			resp: &immvisapi.DimensionData{},
			want: []int{},
		},
		{
			name:          "err_malformed_float",
			resp:          &immvisapi.DimensionData{Data: []string{"0", "1.0"}},
			wantMalformed: true,
		},
		{
			name:          "err_malformed_overflow",
			resp:          &immvisapi.DimensionData{Data: []string{"0", "2147483648"}},
			wantMalformed: true,
		},
		{
			name:          "err_malformed_empty_token",
			resp:          &immvisapi.DimensionData{Data: []string{""}},
			wantMalformed: true,
		},
		{
			name:    "err_service",
			respErr: errors.New("service error"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			immvisMock := mock.NewMockImmVisClient(ctrl)
			immvisMock.EXPECT().GetKMeansClusterMapping(gomock.Any(), &immvisapi.KMeansRequest{
				NumClusters: 3,
				Dimensions:  []*immvisapi.Dimension{{Name: "a"}},
			}).Return(tt.resp, tt.respErr).Times(1)

			c := initGRPCClient(immvisMock)

			got, err := c.GetKMeansClusterMapping(context.Background(), 3, "a")
			switch {
			case tt.wantMalformed:
				require.ErrorIs(t, err, ErrMalformedResponse)
				require.Nil(t, got)
			case tt.respErr != nil:
				require.Equal(t, tt.respErr, err)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
		})
	}
}
