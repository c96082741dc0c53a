package immvis

import (
	"context"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
)

const methodGetCorrelationBetweenTwoDimensions = "GetCorrelationBetweenTwoDimensions"

func (c *GRPCClient) GetCorrelationBetweenTwoDimensions(ctx context.Context, a, b string) (float32, error) {
	req := &immvisapi.CorrelationRequest{
		Dimension1: &immvisapi.Dimension{Name: a},
		Dimension2: &immvisapi.Dimension{Name: b},
	}
	resp, err := sendRequest(ctx, c, methodGetCorrelationBetweenTwoDimensions,
		func(ctx context.Context, client immvisapi.ImmVisClient) (*immvisapi.CorrelationResult, error) {
			return client.GetCorrelationBetweenTwoDimensions(ctx, req)
		},
	)
	if err != nil {
		return 0, err
	}
	return resp.GetResult(), nil
}
