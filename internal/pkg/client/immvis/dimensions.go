package immvis

import (
	"context"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
)

const (
	methodGetDimensionInfo                  = "GetDimensionInfo"
	methodGetDimensionDescriptiveStatistics = "GetDimensionDescriptiveStatistics"
	methodGetDimensionData                  = "GetDimensionData"
)

func (c *GRPCClient) GetDimensionInfo(ctx context.Context, name string) (*immvisapi.DimensionInfo, error) {
	req := &immvisapi.Dimension{Name: name}
	return sendRequest(ctx, c, methodGetDimensionInfo,
		func(ctx context.Context, client immvisapi.ImmVisClient) (*immvisapi.DimensionInfo, error) {
			return client.GetDimensionInfo(ctx, req)
		},
	)
}

func (c *GRPCClient) GetDimensionDescriptiveStatistics(ctx context.Context, name string) ([]*immvisapi.Feature, error) {
	req := &immvisapi.Dimension{Name: name}
	return sendRequest(ctx, c, methodGetDimensionDescriptiveStatistics,
		func(ctx context.Context, client immvisapi.ImmVisClient) ([]*immvisapi.Feature, error) {
			stream, err := client.GetDimensionDescriptiveStatistics(ctx, req)
			if err != nil {
				return nil, err
			}
			return drainStream[immvisapi.Feature](methodGetDimensionDescriptiveStatistics, stream)
		},
	)
}

// GetDimensionsData streams the names, half-closes and only then reads the values of every dimension.
func (c *GRPCClient) GetDimensionsData(ctx context.Context, names ...string) ([]*immvisapi.DimensionData, error) {
	return sendRequest(ctx, c, methodGetDimensionData,
		func(ctx context.Context, client immvisapi.ImmVisClient) ([]*immvisapi.DimensionData, error) {
			stream, err := client.GetDimensionData(ctx)
			if err != nil {
				return nil, err
			}
			if err := sendDimensions(methodGetDimensionData, stream, names); err != nil {
				return nil, err
			}
			if err := stream.CloseSend(); err != nil {
				logStreamError(methodGetDimensionData, "close_send", err)
				return nil, err
			}
			return drainStream[immvisapi.DimensionData](methodGetDimensionData, stream)
		},
	)
}
