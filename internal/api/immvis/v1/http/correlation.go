package http

import (
	"context"
	"net/http"

	"github.com/immvis/immvis-go/internal/api/httputil"
	"github.com/immvis/immvis-go/tracing"
)

type getCorrelationRequest struct {
	Dimension1 string `json:"dimension1"`
	Dimension2 string `json:"dimension2"`
}

type getCorrelationResponse struct {
	Result float32 `json:"result"`
}

func (a *API) serveGetCorrelation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_get_correlation")
	defer span.End()

	wr := httputil.NewWriter(w)

	var req getCorrelationRequest
	if err := decodeRequest(r, &req); err != nil {
		httputil.ProcessError(wr, err)
		return
	}
	names := []string{req.Dimension1, req.Dimension2}
	if err := checkDimensionNames(names); err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	a.serveCached(ctx, wr, "correlation", names, func(ctx context.Context) (any, error) {
		res, err := a.client.GetCorrelationBetweenTwoDimensions(ctx, req.Dimension1, req.Dimension2)
		if err != nil {
			return nil, err
		}
		return getCorrelationResponse{Result: res}, nil
	})
}
