// Package kv provides the durable key-value contract the store persists
// its snapshot through, plus the concrete backends the app can be
// configured with.
package kv

import "context"

// Store is the persistence transport. Get reports absence through its
// second return rather than an error so callers can distinguish "never
// persisted" from a real backend failure.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
