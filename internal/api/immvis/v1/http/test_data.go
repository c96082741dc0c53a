package http

import (
	"strconv"
	"time"

	"github.com/immvis/immvis-go/internal/pkg/cache"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis"
)

const testCacheTTL = time.Minute

// initTestAPI returns an API with sequential session ids session-1, session-2, ...
func initTestAPI(client immvis.Client, c cache.Cache) *API {
	return initTestAPIWithOptions(client, c, Options{CacheTTL: testCacheTTL})
}

func initTestAPIWithOptions(client immvis.Client, c cache.Cache, opts Options) *API {
	a := New(client, c, opts)
	n := 0
	a.newSessionID = func() string {
		n++
		return "session-" + strconv.Itoa(n)
	}
	a.sessionID = a.newSessionID()
	return a
}
