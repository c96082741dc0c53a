package immvis

import (
	"context"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
)

const (
	methodGetKMeansCentroids      = "GetKMeansCentroids"
	methodGetKMeansClusterMapping = "GetKMeansClusterMapping"
)

func newKMeansRequest(numClusters int32, names []string) *immvisapi.KMeansRequest {
	return &immvisapi.KMeansRequest{
		NumClusters: numClusters,
		Dimensions:  toDimensions(names),
	}
}

func (c *GRPCClient) GetKMeansCentroids(ctx context.Context, numClusters int32, names ...string) ([]*immvisapi.KMeansCentroid, error) {
	req := newKMeansRequest(numClusters, names)
	return sendRequest(ctx, c, methodGetKMeansCentroids,
		func(ctx context.Context, client immvisapi.ImmVisClient) ([]*immvisapi.KMeansCentroid, error) {
			stream, err := client.GetKMeansCentroids(ctx, req)
			if err != nil {
				return nil, err
			}
			return drainStream[immvisapi.KMeansCentroid](methodGetKMeansCentroids, stream)
		},
	)
}

// GetKMeansClusterMapping returns the cluster index of every dataset row.
func (c *GRPCClient) GetKMeansClusterMapping(ctx context.Context, numClusters int32, names ...string) ([]int, error) {
	req := newKMeansRequest(numClusters, names)
	resp, err := sendRequest(ctx, c, methodGetKMeansClusterMapping,
		func(ctx context.Context, client immvisapi.ImmVisClient) (*immvisapi.DimensionData, error) {
			return client.GetKMeansClusterMapping(ctx, req)
		},
	)
	if err != nil {
		return nil, err
	}
	return parseInts(methodGetKMeansClusterMapping, resp.GetData())
}
