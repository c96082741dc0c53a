package http

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/immvis/immvis-go/internal/api/httputil"
	"github.com/immvis/immvis-go/internal/app/tokenlimiter"
	"github.com/immvis/immvis-go/internal/app/types"
	"github.com/immvis/immvis-go/internal/pkg/cache"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis"
	"github.com/immvis/immvis-go/logger"
	"github.com/immvis/immvis-go/metric"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const cacheKeyPrefix = "immvis_v1"

type Options struct {
	CacheTTL time.Duration
	// MaxParallelRequestsPerUser bounds uncached calls per user, 0 means no limit.
	MaxParallelRequestsPerUser int
}

type API struct {
	client   immvis.Client
	cache    cache.Cache
	cacheTTL time.Duration
	limiter  *tokenlimiter.Limiter

	newSessionID func() string
	sessionMu    sync.RWMutex
	sessionID    string
}

// New returns the HTTP API over client. Read results are cached in c for
// opts.CacheTTL under the session of the opened dataset, nil c disables caching.
func New(client immvis.Client, c cache.Cache, opts Options) *API {
	a := &API{
		client:       client,
		cache:        c,
		cacheTTL:     opts.CacheTTL,
		limiter:      tokenlimiter.New(opts.MaxParallelRequestsPerUser),
		newSessionID: newUUID,
	}
	a.sessionID = a.newSessionID()
	return a
}

func newUUID() string {
	return uuid.Must(uuid.NewV4()).String()
}

func (a *API) Router() chi.Router {
	mux := chi.NewMux()

	mux.Post("/dataset/open", a.serveOpenDataset)
	mux.Get("/dataset/dimensions", a.serveGetDatasetDimensions)
	mux.Get("/dataset/values", a.serveGetDatasetValues)
	mux.Get("/dataset/correlation_matrix", a.serveGetCorrelationMatrix)

	mux.Get("/dimensions/{name}", a.serveGetDimensionInfo)
	mux.Get("/dimensions/{name}/statistics", a.serveGetDimensionStatistics)
	mux.Post("/dimensions/data", a.serveGetDimensionsData)

	mux.Post("/outliers", a.serveGetOutliersMapping)
	mux.Post("/kmeans/centroids", a.serveGetKMeansCentroids)
	mux.Post("/kmeans/mapping", a.serveGetKMeansClusterMapping)
	mux.Post("/correlation", a.serveGetCorrelation)

	return mux
}

func (a *API) session() string {
	a.sessionMu.RLock()
	defer a.sessionMu.RUnlock()
	return a.sessionID
}

// rotateSession makes every cached result of the previous dataset unreachable.
func (a *API) rotateSession() string {
	a.sessionMu.Lock()
	defer a.sessionMu.Unlock()
	a.sessionID = a.newSessionID()
	return a.sessionID
}

// cacheKey joins the key parts with ':'. Params are query-escaped so a ':'
// inside a dimension name cannot shift them.
func cacheKey(session, method string, params ...string) string {
	parts := make([]string, 0, 3+len(params))
	parts = append(parts, cacheKeyPrefix, session, method)
	for _, p := range params {
		parts = append(parts, url.QueryEscape(p))
	}
	return strings.Join(parts, ":")
}

type fetchFn func(ctx context.Context) (any, error)

// serveCached writes the cached response of method and params or fetches,
// caches and writes a fresh one. The session is captured before the fetch,
// so a result racing with a dataset reopen lands under the old session.
func (a *API) serveCached(ctx context.Context, wr *httputil.Writer, method string, params []string, fetch fetchFn) {
	key := cacheKey(a.session(), method, params...)

	if a.cache != nil {
		if data, err := a.cache.Get(ctx, key); err == nil {
			wr.WriteHeader(http.StatusOK)
			_, _ = wr.Write(data)
			return
		}
	}

	resp, err := a.fetchLimited(ctx, fetch)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		wr.Error(err, http.StatusInternalServerError)
		return
	}

	if a.cache != nil {
		if err := a.cache.SetWithTTL(ctx, key, data, a.cacheTTL); err != nil {
			logger.Error("failed to cache response", zap.String("key", key), zap.Error(err))
		}
	}

	wr.WriteHeader(http.StatusOK)
	_, _ = wr.Write(data)
}

// fetchLimited runs fetch holding one of the parallel request tokens of the caller.
func (a *API) fetchLimited(ctx context.Context, fetch fetchFn) (any, error) {
	user := requestUser(ctx)
	if !a.limiter.Acquire(user) {
		metric.ServerParallelLimits.Inc()
		return nil, types.ErrTooManyRequests
	}
	defer a.limiter.Release(user)

	return fetch(ctx)
}

// requestUser returns the caller set by the user middleware, anonymous callers share one key.
func requestUser(ctx context.Context) string {
	user, err := types.GetUserKey(ctx)
	if err != nil {
		return ""
	}
	return user
}

func checkDimensionNames(names []string) error {
	if len(names) == 0 {
		return types.NewErrInvalidRequestField("'dimensions' must not be empty")
	}
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			return types.NewErrInvalidRequestField("empty dimension name at position " + strconv.Itoa(i))
		}
	}
	return nil
}

func checkNumClusters(n int32) error {
	if n <= 0 {
		return types.NewErrInvalidRequestField("'num_clusters' must be positive")
	}
	return nil
}

func decodeRequest(r *http.Request, v any) error {
	if err := httputil.DecodeJSON(r, v); err != nil {
		return types.NewErrInvalidRequestField("failed to parse request body: " + err.Error())
	}
	return nil
}
