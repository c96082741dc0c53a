package http

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/immvis/immvis-go/internal/api/httputil"
	"github.com/immvis/immvis-go/tracing"
)

type getOutliersMappingResponse struct {
	Outliers []bool `json:"outliers"`
}

func (a *API) serveGetOutliersMapping(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_get_outliers_mapping")
	defer span.End()

	wr := httputil.NewWriter(w)

	var req dimensionsRequest
	if err := decodeRequest(r, &req); err != nil {
		httputil.ProcessError(wr, err)
		return
	}
	if err := checkDimensionNames(req.Dimensions); err != nil {
		httputil.ProcessError(wr, err)
		return
	}
	span.SetAttributes(attribute.StringSlice("dimensions", req.Dimensions))

	a.serveCached(ctx, wr, "outliers", req.Dimensions, func(ctx context.Context) (any, error) {
		outliers, err := a.client.GetOutliersMapping(ctx, req.Dimensions...)
		if err != nil {
			return nil, err
		}
		return getOutliersMappingResponse{Outliers: outliers}, nil
	})
}
