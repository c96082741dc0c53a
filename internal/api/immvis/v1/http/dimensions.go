package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/immvis/immvis-go/internal/api/httputil"
	"github.com/immvis/immvis-go/internal/app/types"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	"github.com/immvis/immvis-go/tracing"
)

func dimensionNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if strings.TrimSpace(name) == "" {
		return "", types.NewErrInvalidRequestField("empty dimension name")
	}
	return name, nil
}

func (a *API) serveGetDimensionInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_get_dimension_info")
	defer span.End()

	wr := httputil.NewWriter(w)

	name, err := dimensionNameParam(r)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}
	span.SetAttributes(attribute.String("dimension", name))

	a.serveCached(ctx, wr, "dimension_info", []string{name}, func(ctx context.Context) (any, error) {
		info, err := a.client.GetDimensionInfo(ctx, name)
		if err != nil {
			return nil, err
		}
		return dimensionInfoFromProto(info), nil
	})
}

type feature struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type getDimensionStatisticsResponse struct {
	Features []feature `json:"features"`
}

func (a *API) serveGetDimensionStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_get_dimension_statistics")
	defer span.End()

	wr := httputil.NewWriter(w)

	name, err := dimensionNameParam(r)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}
	span.SetAttributes(attribute.String("dimension", name))

	a.serveCached(ctx, wr, "dimension_statistics", []string{name}, func(ctx context.Context) (any, error) {
		features, err := a.client.GetDimensionDescriptiveStatistics(ctx, name)
		if err != nil {
			return nil, err
		}
		res := getDimensionStatisticsResponse{Features: make([]feature, len(features))}
		for i, f := range features {
			res.Features[i] = feature{Name: f.GetName(), Value: f.GetValue()}
		}
		return res, nil
	})
}

type dimensionsRequest struct {
	Dimensions []string `json:"dimensions"`
}

type dimensionData struct {
	Dimension string   `json:"dimension"`
	Data      []string `json:"data"`
}

func dimensionDataFromProto(p *immvisapi.DimensionData) dimensionData {
	data := p.GetData()
	if data == nil {
		data = []string{}
	}
	return dimensionData{Dimension: p.GetDimension(), Data: data}
}

type getDimensionsDataResponse struct {
	Data []dimensionData `json:"data"`
}

func (a *API) serveGetDimensionsData(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "immvis_v1_get_dimensions_data")
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

	a.serveCached(ctx, wr, "dimensions_data", req.Dimensions, func(ctx context.Context) (any, error) {
		data, err := a.client.GetDimensionsData(ctx, req.Dimensions...)
		if err != nil {
			return nil, err
		}
		res := getDimensionsDataResponse{Data: make([]dimensionData, len(data))}
		for i, d := range data {
			res.Data[i] = dimensionDataFromProto(d)
		}
		return res, nil
	})
}
