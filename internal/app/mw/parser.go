package mw

import (
	"fmt"
	"strings"
)

type uriParts struct {
	api     string
	version string
	method  string
}

// parseURI splits a request URI into api, version and root method,
// e.g. /immvis/v1/kmeans/centroids -> (immvis, v1, kmeans).
// Query string is ignored.
func parseURI(uri string) (uriParts, error) {
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		uri = uri[:i]
	}
	if uri == "" || uri == "/" || uri[0] != '/' {
		return uriParts{}, fmt.Errorf("incorrect URI format: %q", uri)
	}

	parts := strings.Split(uri[1:], "/")
	if len(parts) < 3 || parts[2] == "" {
		return uriParts{}, fmt.Errorf("not enough parts of URI: %q", uri)
	}

	return uriParts{api: parts[0], version: parts[1], method: parts[2]}, nil
}
