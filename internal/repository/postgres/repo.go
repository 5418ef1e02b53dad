package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"messagelog/internal/domain"
)

type Repository struct {
	DB *sql.DB
}

func New(dsn string) (*Repository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &Repository{DB: db}, nil
}

func (r *Repository) InitSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS messages (
			id BIGSERIAL PRIMARY KEY,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("%w: init schema: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *Repository) Insert(ctx context.Context, content string) (*domain.Message, error) {
	var msg domain.Message
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO messages (content)
		VALUES ($1)
		RETURNING id, content, created_at
	`, content).Scan(&msg.ID, &msg.Content, &msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: insert: %v", domain.ErrStoreUnavailable, err)
	}
	return &msg, nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*domain.Message, error) {
	// id is monotonic with insertion, so it is a stable tiebreak for
	// messages sharing a created_at.
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, content, created_at
		FROM messages
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.ID, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", domain.ErrStoreUnavailable, err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %v", domain.ErrStoreUnavailable, err)
	}

	return messages, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM messages
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: count: %v", domain.ErrStoreUnavailable, err)
	}
	return count, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}
