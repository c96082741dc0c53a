package immvis

import "errors"

var (
	ErrNotInitialized    = errors.New("immvis client is not initialized")
	ErrMalformedResponse = errors.New("malformed immvis response")
	ErrConnection        = errors.New("immvis service unavailable")
)
