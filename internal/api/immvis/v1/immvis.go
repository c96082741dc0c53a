package immvis_v1

import (
	"github.com/go-chi/chi/v5"

	http_api "github.com/immvis/immvis-go/internal/api/immvis/v1/http"
	"github.com/immvis/immvis-go/internal/pkg/cache"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis"
)

type ImmVis struct {
	httpAPI *http_api.API
}

type Options = http_api.Options

func New(client immvis.Client, c cache.Cache, opts Options) *ImmVis {
	return &ImmVis{
		httpAPI: http_api.New(client, c, opts),
	}
}

func (i *ImmVis) HTTPRouter() chi.Router {
	return i.httpAPI.Router()
}
