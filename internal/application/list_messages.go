package application

import (
	"context"

	"messagelog/internal/domain"
)

// DefaultListLimit bounds how many messages a single list call returns.
const DefaultListLimit = 50

// ListMessages reads from the durable store only. The cache holds at
// most domain.RecentMessages entries and is never a fallback here.
func (s *Service) ListMessages(ctx context.Context, limit int) ([]*domain.Message, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	return s.store.ListRecent(ctx, limit)
}
