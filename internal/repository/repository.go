package repository

import (
	"context"

	"messagelog/internal/domain"
)

type Store interface {
	// InitSchema idempotently ensures the messages table exists.
	InitSchema(ctx context.Context) error

	// Insert persists content and returns the fully populated message,
	// including the store-assigned id and timestamp.
	Insert(ctx context.Context, content string) (*domain.Message, error)

	// ListRecent returns up to limit messages, newest first. An empty
	// table yields an empty slice, not an error.
	ListRecent(ctx context.Context, limit int) ([]*domain.Message, error)

	// Count returns the exact number of stored messages.
	Count(ctx context.Context) (int64, error)

	Ping(ctx context.Context) error
}
