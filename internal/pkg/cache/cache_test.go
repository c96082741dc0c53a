package cache

import (
	"context"
	"testing"
	"time"

	"github.com/immvis/immvis-go/internal/app/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInmemCfg = config.InmemoryCache{
	NumCounters: 1000,
	MaxCost:     1 << 20,
	BufferItems: 64,
}

func newTestInmemory(t *testing.T) *inmemoryCache {
	t.Helper()
	c, err := newInmemoryCache(testInmemCfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestInmemoryCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newTestInmemory(t)

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.SetWithTTL(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	ttl, err := c.GetTTL(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)

	c.Del(ctx, "k")
	_, err = c.Get(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = c.GetTTL(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLayeredCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	local, shared := newTestInmemory(t), newTestInmemory(t)
	c := &layered{local: local, shared: shared}

	require.NoError(t, c.SetWithTTL(ctx, "both", []byte("1"), time.Minute))
	for _, layer := range []Cache{local, shared} {
		got, err := layer.Get(ctx, "both")
		require.NoError(t, err)
		assert.Equal(t, []byte("1"), got)
	}

	// values present only in the shared layer are copied to the local one
	require.NoError(t, shared.SetWithTTL(ctx, "shared", []byte("2"), time.Minute))
	got, err := c.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
	got, err = local.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)

	c.Del(ctx, "shared")
	_, err = c.Get(ctx, "shared")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = shared.Get(ctx, "shared")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		redis         *config.Redis
		wantInmemOnly bool
	}{
		{
			name:          "no_redis",
			wantInmemOnly: true,
		},
		{
			name: "unreachable_redis",
			redis: &config.Redis{
				Addr:       "127.0.0.1:1",
				Timeout:    100 * time.Millisecond,
				MaxRetries: -1,
			},
			wantInmemOnly: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := New(context.Background(), config.Cache{
				Inmemory: testInmemCfg,
				Redis:    tt.redis,
			})
			require.NoError(t, err)
			t.Cleanup(func() { _ = c.Close() })

			_, inmemOnly := c.(*inmemoryCache)
			assert.Equal(t, tt.wantInmemOnly, inmemOnly)
		})
	}
}
