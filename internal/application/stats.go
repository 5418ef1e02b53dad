package application

import (
	"context"

	"messagelog/internal/domain"
)

// Stats carries the cache and store views side by side. The values are
// deliberately not reconciled; the caller owns interpreting a mismatch
// as staleness.
type Stats struct {
	CacheCount int64
	StoreCount int64
	Recent     []*domain.Message
}

// Stats reads the cache counter, the cache recent list, and the store
// count independently. A failure of either backend propagates; there
// are no partial or defaulted stats.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	cacheCount, err := s.cache.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.cache.Recent(ctx, domain.RecentMessages)
	if err != nil {
		return nil, err
	}

	storeCount, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		CacheCount: cacheCount,
		StoreCount: storeCount,
		Recent:     recent,
	}, nil
}
