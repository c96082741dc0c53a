package httputil

import (
	"errors"
	"net/http"

	"github.com/immvis/immvis-go/internal/app/types"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis"
)

type Error struct {
	Message string `json:"message"`
}

// ProcessError maps err to a response status.
// Client errors are checked before gRPC statuses since ErrConnection wraps one.
func ProcessError(w *Writer, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, types.ErrInvalidRequestField):
		w.Error(err, http.StatusBadRequest)
	case errors.Is(err, types.ErrNotFound):
		w.Error(err, http.StatusNotFound)
	case errors.Is(err, types.ErrTooManyRequests):
		w.Error(err, http.StatusTooManyRequests)
	case errors.Is(err, immvis.ErrNotInitialized) || errors.Is(err, immvis.ErrConnection):
		w.writeError(err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, immvis.ErrMalformedResponse):
		w.writeError(err.Error(), http.StatusBadGateway)
	default:
		w.Error(err, http.StatusInternalServerError)
	}
}

func (w *Writer) writeError(msg string, code int) {
	resp, _ := json.Marshal(Error{Message: msg})

	w.WriteHeader(code)
	_, _ = w.Write(resp)
	w.ErrorMessage = msg
}
