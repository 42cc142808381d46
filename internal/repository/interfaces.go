package repository

import (
	"context"
	"time"
)

// Entry describes one stored document without its payload.
type Entry struct {
	Key       string
	SizeBytes int
	UpdatedAt time.Time
}

// KeyValueRepo persists whole JSON documents by key. Writes always replace
// the full value; there is no partial update.
type KeyValueRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Entries(ctx context.Context) ([]Entry, error)
}
