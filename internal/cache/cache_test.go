package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messagelog/internal/domain"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr())
	t.Cleanup(func() { c.Client.Close() })
	return c, mr
}

func snapshot(id int64) *domain.Message {
	return &domain.Message{
		ID:        id,
		Content:   fmt.Sprintf("message %d", id),
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Second),
	}
}

func TestIncrementCount(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	n, err := c.IncrementCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = c.IncrementCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCountUnsetKeyIsZero(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRecentAbsentListIsEmpty(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	recent, err := c.Recent(ctx, domain.RecentMessages)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestPushRecentTrimsToBound(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	for id := int64(1); id <= 15; id++ {
		require.NoError(t, c.PushRecent(ctx, snapshot(id)))
	}

	entries, err := mr.List("recent_messages")
	require.NoError(t, err)
	assert.Len(t, entries, domain.RecentMessages)

	recent, err := c.Recent(ctx, domain.RecentMessages)
	require.NoError(t, err)
	require.Len(t, recent, domain.RecentMessages)

	// Snapshots 6..15, newest first.
	for i, msg := range recent {
		assert.Equal(t, int64(15-i), msg.ID)
	}
}

func TestPushRecentRoundTripsSnapshot(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	sent := snapshot(1)
	require.NoError(t, c.PushRecent(ctx, sent))

	recent, err := c.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)

	assert.Equal(t, sent.ID, recent[0].ID)
	assert.Equal(t, sent.Content, recent[0].Content)
	assert.True(t, sent.CreatedAt.Equal(recent[0].CreatedAt))
}

func TestRecentLimit(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	for id := int64(1); id <= 5; id++ {
		require.NoError(t, c.PushRecent(ctx, snapshot(id)))
	}

	recent, err := c.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, int64(5), recent[0].ID)
	assert.Equal(t, int64(3), recent[2].ID)
}

func TestUnavailableCache(t *testing.T) {
	ctx := context.Background()
	c := New("127.0.0.1:1")
	defer c.Client.Close()

	assert.ErrorIs(t, c.Ping(ctx), domain.ErrCacheUnavailable)

	_, err := c.IncrementCount(ctx)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)

	assert.ErrorIs(t, c.PushRecent(ctx, snapshot(1)), domain.ErrCacheUnavailable)

	_, err = c.Count(ctx)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)

	_, err = c.Recent(ctx, domain.RecentMessages)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
}
