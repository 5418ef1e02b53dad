package application

import (
	"context"

	"go.uber.org/zap"

	"messagelog/internal/domain"
	"messagelog/internal/repository"
)

// Mirror is the non-authoritative secondary index kept alongside the
// durable store: an advisory counter and a bounded recent list.
type Mirror interface {
	Ping(ctx context.Context) error
	IncrementCount(ctx context.Context) (int64, error)
	PushRecent(ctx context.Context, msg *domain.Message) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]*domain.Message, error)
}

type Service struct {
	store repository.Store
	cache Mirror
	log   *zap.Logger
}

func New(store repository.Store, cache Mirror, log *zap.Logger) *Service {
	return &Service{store: store, cache: cache, log: log}
}
