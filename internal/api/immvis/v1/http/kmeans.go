package http

import (
	"context"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/immvis/immvis-go/internal/api/httputil"
	"github.com/immvis/immvis-go/tracing"
)

type kmeansRequest struct {
	NumClusters int32    `json:"num_clusters"`
	Dimensions  []string `json:"dimensions"`
}

func (a *API) decodeKMeansRequest(r *http.Request) (kmeansRequest, error) {
	var req kmeansRequest
	if err := decodeRequest(r, &req); err != nil {
		return req, err
	}
	if err := checkNumClusters(req.NumClusters); err != nil {
		return req, err
	}
	if err := checkDimensionNames(req.Dimensions); err != nil {
		return req, err
	}
	return req, nil
}

func (req kmeansRequest) cacheParams() []string {
	return append([]string{strconv.Itoa(int(req.NumClusters))}, req.Dimensions...)
}

type getKMeansCentroidsResponse struct {
	Centroids [][]string `json:"centroids"`
}

func (a *API) serveGetKMeansCentroids(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_get_kmeans_centroids")
	defer span.End()

	wr := httputil.NewWriter(w)

	req, err := a.decodeKMeansRequest(r)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}
	span.SetAttributes(
		attribute.Int("num_clusters", int(req.NumClusters)),
		attribute.StringSlice("dimensions", req.Dimensions),
	)

	a.serveCached(ctx, wr, "kmeans_centroids", req.cacheParams(), func(ctx context.Context) (any, error) {
		centroids, err := a.client.GetKMeansCentroids(ctx, req.NumClusters, req.Dimensions...)
		if err != nil {
			return nil, err
		}
		res := getKMeansCentroidsResponse{Centroids: make([][]string, len(centroids))}
		for i, c := range centroids {
			data := c.GetData()
			if data == nil {
				data = []string{}
			}
			res.Centroids[i] = data
		}
		return res, nil
	})
}

type getKMeansClusterMappingResponse struct {
	Mapping []int `json:"mapping"`
}

func (a *API) serveGetKMeansClusterMapping(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_get_kmeans_cluster_mapping")
	defer span.End()

	wr := httputil.NewWriter(w)

	req, err := a.decodeKMeansRequest(r)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}
	span.SetAttributes(
		attribute.Int("num_clusters", int(req.NumClusters)),
		attribute.StringSlice("dimensions", req.Dimensions),
	)

	a.serveCached(ctx, wr, "kmeans_mapping", req.cacheParams(), func(ctx context.Context) (any, error) {
		mapping, err := a.client.GetKMeansClusterMapping(ctx, req.NumClusters, req.Dimensions...)
		if err != nil {
			return nil, err
		}
		return getKMeansClusterMappingResponse{Mapping: mapping}, nil
	})
}
