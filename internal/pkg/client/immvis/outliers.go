package immvis

import (
	"context"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
)

const methodGetOutlierMapping = "GetOutlierMapping"

// GetOutliersMapping reports for every dataset row whether it is an outlier in the given dimensions.
func (c *GRPCClient) GetOutliersMapping(ctx context.Context, names ...string) ([]bool, error) {
	resp, err := sendRequest(ctx, c, methodGetOutlierMapping,
		func(ctx context.Context, client immvisapi.ImmVisClient) (*immvisapi.DimensionData, error) {
			stream, err := client.GetOutlierMapping(ctx)
			if err != nil {
				return nil, err
			}
			if err := sendDimensions(methodGetOutlierMapping, stream, names); err != nil {
				return nil, err
			}
			resp, err := stream.CloseAndRecv()
			if err != nil {
				logStreamError(methodGetOutlierMapping, "recv", err)
				return nil, err
			}
			return resp, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return parseBools(methodGetOutlierMapping, resp.GetData())
}
