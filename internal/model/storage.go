package model

import "context"

// StorageKey is the single key the invoice store mirrors its state under.
const StorageKey = "invoice-storage"

// Storage defines the durable key/value mirror behind the invoice store.
// Load returns ErrNotFound when the key has never been written.
type Storage interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}
