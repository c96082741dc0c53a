package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDataHTTP is one handler call and what it must answer.
// An empty WantRespBody skips the body check.
type TestDataHTTP struct {
	Req     *http.Request
	Handler http.HandlerFunc

	WantRespBody string
	WantStatus   int
	WantHeaders  map[string]string
}

func DoTestHTTP(t *testing.T, data TestDataHTTP) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	data.Handler(rec, data.Req)

	require.Equal(t, data.WantStatus, rec.Code, "body: %s", rec.Body.String())
	if data.WantRespBody != "" {
		require.Equal(t, data.WantRespBody, rec.Body.String())
	}
	for k, v := range data.WantHeaders {
		require.Equal(t, v, rec.Header().Get(k), "header %s", k)
	}
	return rec
}
