package domain

import (
	"encoding/json"
	"time"
)

// RecentMessages caps how many snapshots the cache retains for fast reads.
const RecentMessages = 10

// TimeLayout is the canonical wire encoding for message timestamps:
// ISO-8601 with fixed microsecond precision, UTC-normalized before
// encoding. Snapshots stored in the cache and HTTP response bodies use
// the same encoding, so a message serialized twice is byte-identical.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// Message Invariants:
// 1. Identity: ID is assigned by the durable store and monotonically
//    increasing with insertion order.
// 2. Immutability: all fields are immutable after creation; messages
//    are never updated or deleted.
// 3. Ownership: the durable store is the single source of truth; the
//    cache only ever holds a best-effort serialized copy.
type Message struct {
	ID        int64
	Content   string
	CreatedAt time.Time
}

type messageJSON struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageJSON{
		ID:        m.ID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC().Format(TimeLayout),
	})
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var w messageJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	ts, err := time.Parse(TimeLayout, w.CreatedAt)
	if err != nil {
		return err
	}
	m.ID = w.ID
	m.Content = w.Content
	m.CreatedAt = ts
	return nil
}
