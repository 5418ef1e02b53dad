package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"messagelog/internal/domain"
)

const (
	countKey  = "message_count"
	recentKey = "recent_messages"
)

type Cache struct {
	Client *redis.Client
}

func New(addr string) *Cache {
	return &Cache{
		Client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func (c *Cache) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// IncrementCount atomically bumps the advisory message counter and
// returns the new value.
func (c *Cache) IncrementCount(ctx context.Context) (int64, error) {
	n, err := c.Client.Incr(ctx, countKey).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: incr: %v", domain.ErrCacheUnavailable, err)
	}
	return n, nil
}

// PushRecent prepends a serialized snapshot of msg to the recent list
// and trims it back to the bound. A concurrent reader may observe the
// list one entry over the bound between the two steps; it converges to
// at most domain.RecentMessages entries once the call returns.
func (c *Cache) PushRecent(ctx context.Context, msg *domain.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	pipe := c.Client.TxPipeline()
	pipe.LPush(ctx, recentKey, payload)
	pipe.LTrim(ctx, recentKey, 0, domain.RecentMessages-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: push: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// Count returns the advisory counter, or 0 if it was never set.
func (c *Cache) Count(ctx context.Context) (int64, error) {
	n, err := c.Client.Get(ctx, countKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: get: %v", domain.ErrCacheUnavailable, err)
	}
	return n, nil
}

// Recent returns up to limit snapshots in push order, newest first.
// An absent list yields an empty slice.
func (c *Cache) Recent(ctx context.Context, limit int) ([]*domain.Message, error) {
	if limit <= 0 || limit > domain.RecentMessages {
		limit = domain.RecentMessages
	}

	raw, err := c.Client.LRange(ctx, recentKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: lrange: %v", domain.ErrCacheUnavailable, err)
	}

	messages := make([]*domain.Message, 0, len(raw))
	for _, entry := range raw {
		var msg domain.Message
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		messages = append(messages, &msg)
	}

	return messages, nil
}
