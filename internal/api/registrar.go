// Package api is the HTTP gateway of the ImmVis service.
package api

import (
	"github.com/go-chi/chi/v5"

	immvis_v1_api "github.com/immvis/immvis-go/internal/api/immvis/v1"
)

// APIImmVis is the first URI segment of the ImmVis routes, rate limiters are configured by it.
const APIImmVis = "immvis"

// Registrar is registrar of HTTP handlers.
type Registrar struct {
	immvisV1 *immvis_v1_api.ImmVis
}

// NewRegistrar returns new registrar instance.
func NewRegistrar(immvisV1 *immvis_v1_api.ImmVis) *Registrar {
	return &Registrar{
		immvisV1: immvisV1,
	}
}

// APIs returns the names of registered apis.
func (r *Registrar) APIs() []string {
	var apis []string
	if r.immvisV1 != nil {
		apis = append(apis, APIImmVis)
	}
	return apis
}

// RegisterHTTPHandlers registers all handlers for mux.
func (r *Registrar) RegisterHTTPHandlers(mux *chi.Mux) {
	if r.immvisV1 != nil {
		mux.Mount("/"+APIImmVis+"/v1", r.immvisV1.HTTPRouter())
	}
}
