package immvis

import (
	"context"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
)

const (
	methodOpenDatasetFile      = "OpenDatasetFile"
	methodGetDatasetDimensions = "GetDatasetDimensions"
	methodGetDatasetValues     = "GetDatasetValues"
	methodGetCorrelationMatrix = "GetCorrelationMatrix"
)

// OpenDatasetFromFile asks the service to load a dataset file and returns its response code.
func (c *GRPCClient) OpenDatasetFromFile(ctx context.Context, filePath string) (int32, error) {
	req := &immvisapi.OpenDatasetFileRequest{FilePath: filePath}
	resp, err := sendRequest(ctx, c, methodOpenDatasetFile,
		func(ctx context.Context, client immvisapi.ImmVisClient) (*immvisapi.OpenDatasetFileResponse, error) {
			return client.OpenDatasetFile(ctx, req)
		},
	)
	if err != nil {
		return 0, err
	}
	return resp.GetResponseCode(), nil
}

func (c *GRPCClient) GetDatasetDimensions(ctx context.Context) ([]*immvisapi.DimensionInfo, error) {
	return sendRequest(ctx, c, methodGetDatasetDimensions,
		func(ctx context.Context, client immvisapi.ImmVisClient) ([]*immvisapi.DimensionInfo, error) {
			stream, err := client.GetDatasetDimensions(ctx, &immvisapi.Void{})
			if err != nil {
				return nil, err
			}
			return drainStream[immvisapi.DimensionInfo](methodGetDatasetDimensions, stream)
		},
	)
}

func (c *GRPCClient) GetDatasetValues(ctx context.Context) ([]*immvisapi.DataRow, error) {
	return sendRequest(ctx, c, methodGetDatasetValues,
		func(ctx context.Context, client immvisapi.ImmVisClient) ([]*immvisapi.DataRow, error) {
			stream, err := client.GetDatasetValues(ctx, &immvisapi.Void{})
			if err != nil {
				return nil, err
			}
			return drainStream[immvisapi.DataRow](methodGetDatasetValues, stream)
		},
	)
}

func (c *GRPCClient) GetCorrelationMatrix(ctx context.Context) ([]*immvisapi.DataRow, error) {
	return sendRequest(ctx, c, methodGetCorrelationMatrix,
		func(ctx context.Context, client immvisapi.ImmVisClient) ([]*immvisapi.DataRow, error) {
			stream, err := client.GetCorrelationMatrix(ctx, &immvisapi.Void{})
			if err != nil {
				return nil, err
			}
			return drainStream[immvisapi.DataRow](methodGetCorrelationMatrix, stream)
		},
	)
}
