package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"messagelog/internal/domain"
)

func TestStats(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	mirror, _ := newTestMirror(t)
	svc := New(store, mirror, zap.NewNop())

	for id := int64(1); id <= 3; id++ {
		_, err := mirror.IncrementCount(ctx)
		require.NoError(t, err)
		require.NoError(t, mirror.PushRecent(ctx, storedMessage(id, "cached")))
	}

	// The store reports a different count; stats must not reconcile.
	store.On("Count", ctx).Return(int64(7), nil).Once()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.CacheCount)
	assert.Equal(t, int64(7), stats.StoreCount)
	require.Len(t, stats.Recent, 3)
	assert.Equal(t, int64(3), stats.Recent[0].ID)

	store.AssertExpectations(t)
}

func TestStatsCacheDown(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	svc := New(store, deadMirror(t), zap.NewNop())

	_, err := svc.Stats(ctx)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)

	// No partial stats: the store is never consulted once the cache
	// read fails.
	store.AssertNotCalled(t, "Count", ctx)
}

func TestStatsStoreDown(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	mirror, _ := newTestMirror(t)
	svc := New(store, mirror, zap.NewNop())

	store.On("Count", ctx).Return(int64(0), domain.ErrStoreUnavailable).Once()

	_, err := svc.Stats(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	store.AssertExpectations(t)
}
