package httputil

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	headerContentType = "Content-Type"

	contentTypeJSON = "application/json"
)

// Writer records what a handler wrote for the middlewares: status,
// error message and body size.
type Writer struct {
	http.ResponseWriter
	ErrorMessage string
	StatusCode   int
	BytesWritten int
}

func NewWriter(w http.ResponseWriter) *Writer {
	if ww, ok := w.(*Writer); ok {
		return ww
	}
	w.Header().Set(headerContentType, contentTypeJSON)
	return &Writer{ResponseWriter: w}
}

func (w *Writer) WriteHeader(statusCode int) {
	w.StatusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *Writer) Write(b []byte) (int, error) {
	if w.StatusCode == 0 {
		w.StatusCode = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.BytesWritten += n
	return n, err
}

func (w *Writer) WriteJson(data any) {
	w.WriteJsonWithStatus(data, http.StatusOK)
}

func (w *Writer) WriteJsonWithStatus(data any, code int) {
	resp, err := json.Marshal(data)
	if err != nil {
		w.Error(err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(code)
	_, _ = w.Write(resp)
}

// Error writes err as {"message": ...}. A gRPC status in err overrides code.
func (w *Writer) Error(err error, code int) {
	msg := err.Error()
	if st, ok := status.FromError(err); ok {
		msg = st.Message()
		code = grpcToHTTPCode(st.Code())
	}
	w.writeError(msg, code)
}

// DecodeJSON reads the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// statusClientClosedRequest is the nginx code for requests canceled by the caller.
const statusClientClosedRequest = 499

var grpcToHTTP = map[codes.Code]int{
	codes.OK:                 http.StatusOK,
	codes.Canceled:           statusClientClosedRequest,
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.Aborted:            http.StatusConflict,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.Unauthenticated:    http.StatusUnauthorized,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Unavailable:        http.StatusServiceUnavailable,
}

func grpcToHTTPCode(code codes.Code) int {
	if c, ok := grpcToHTTP[code]; ok {
		return c
	}
	return http.StatusInternalServerError
}
