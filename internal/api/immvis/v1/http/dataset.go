package http

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/immvis/immvis-go/internal/api/httputil"
	"github.com/immvis/immvis-go/internal/app/types"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	"github.com/immvis/immvis-go/tracing"
)

type openDatasetRequest struct {
	FilePath string `json:"file_path"`
}

type openDatasetResponse struct {
	ResponseCode int32  `json:"response_code"`
	SessionID    string `json:"session_id"`
}

// serveOpenDataset loads a dataset file and starts a new cache session.
func (a *API) serveOpenDataset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_open_dataset")
	defer span.End()

	wr := httputil.NewWriter(w)

	var req openDatasetRequest
	if err := decodeRequest(r, &req); err != nil {
		httputil.ProcessError(wr, err)
		return
	}
	if strings.TrimSpace(req.FilePath) == "" {
		httputil.ProcessError(wr, types.NewErrInvalidRequestField("'file_path' must not be empty"))
		return
	}

	span.SetAttributes(attribute.String("file_path", req.FilePath))

	code, err := a.client.OpenDatasetFromFile(ctx, req.FilePath)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	wr.WriteJson(openDatasetResponse{
		ResponseCode: code,
		SessionID:    a.rotateSession(),
	})
}

type dimensionInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func dimensionInfoFromProto(p *immvisapi.DimensionInfo) dimensionInfo {
	return dimensionInfo{
		Name: p.GetName(),
		Type: p.GetType(),
	}
}

type getDatasetDimensionsResponse struct {
	Dimensions []dimensionInfo `json:"dimensions"`
}

func (a *API) serveGetDatasetDimensions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_get_dataset_dimensions")
	defer span.End()

	a.serveCached(ctx, httputil.NewWriter(w), "dimensions", nil, func(ctx context.Context) (any, error) {
		dims, err := a.client.GetDatasetDimensions(ctx)
		if err != nil {
			return nil, err
		}
		res := getDatasetDimensionsResponse{Dimensions: make([]dimensionInfo, len(dims))}
		for i, d := range dims {
			res.Dimensions[i] = dimensionInfoFromProto(d)
		}
		return res, nil
	})
}

type rowsResponse struct {
	Rows [][]string `json:"rows"`
}

func rowsResponseFromProto(rows []*immvisapi.DataRow) rowsResponse {
	res := rowsResponse{Rows: make([][]string, len(rows))}
	for i, row := range rows {
		data := row.GetData()
		if data == nil {
			data = []string{}
		}
		res.Rows[i] = data
	}
	return res
}

func (a *API) serveGetDatasetValues(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_get_dataset_values")
	defer span.End()

	a.serveCached(ctx, httputil.NewWriter(w), "values", nil, func(ctx context.Context) (any, error) {
		rows, err := a.client.GetDatasetValues(ctx)
		if err != nil {
			return nil, err
		}
		return rowsResponseFromProto(rows), nil
	})
}

func (a *API) serveGetCorrelationMatrix(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_get_correlation_matrix")
	defer span.End()

	a.serveCached(ctx, httputil.NewWriter(w), "correlation_matrix", nil, func(ctx context.Context) (any, error) {
		rows, err := a.client.GetCorrelationMatrix(ctx)
		if err != nil {
			return nil, err
		}
		return rowsResponseFromProto(rows), nil
	})
}
