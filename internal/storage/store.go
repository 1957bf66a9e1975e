package storage

import "context"

// Store is a durable string key-value store. Get returns
// model.ErrKeyNotFound for keys that were never written.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}
