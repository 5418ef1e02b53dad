package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"messagelog/internal/domain"
)

func TestListMessagesDelegatesToStore(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	mirror, _ := newTestMirror(t)
	svc := New(store, mirror, zap.NewNop())

	stored := []*domain.Message{
		storedMessage(3, "newest"),
		storedMessage(2, "middle"),
		storedMessage(1, "oldest"),
	}
	store.On("ListRecent", ctx, 3).Return(stored, nil).Once()

	messages, err := svc.ListMessages(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, stored, messages)

	store.AssertExpectations(t)
}

func TestListMessagesLimitClamped(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	mirror, _ := newTestMirror(t)
	svc := New(store, mirror, zap.NewNop())

	store.On("ListRecent", ctx, DefaultListLimit).Return([]*domain.Message{}, nil).Times(3)

	for _, limit := range []int{0, -1, 500} {
		_, err := svc.ListMessages(ctx, limit)
		require.NoError(t, err)
	}

	store.AssertExpectations(t)
}

func TestListMessagesStoreDown(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	mirror, _ := newTestMirror(t)
	svc := New(store, mirror, zap.NewNop())

	store.On("ListRecent", ctx, DefaultListLimit).
		Return(nil, domain.ErrStoreUnavailable).Once()

	_, err := svc.ListMessages(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	store.AssertExpectations(t)
}
