package cli

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w io.Writer, pretty bool, v any) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

type dimensionInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func dimensionInfoFromProto(p *immvisapi.DimensionInfo) dimensionInfo {
	return dimensionInfo{Name: p.GetName(), Type: p.GetType()}
}

type feature struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type dimensionData struct {
	Dimension string   `json:"dimension"`
	Data      []string `json:"data"`
}

type dataRow interface {
	GetData() []string
}

func rowsFromProto[T dataRow](rows []T) [][]string {
	res := make([][]string, len(rows))
	for i, r := range rows {
		data := r.GetData()
		if data == nil {
			data = []string{}
		}
		res[i] = data
	}
	return res
}
