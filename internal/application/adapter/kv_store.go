// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// KeyValueStore is the opaque on-device storage the ledger persists to.
// Values are JSON documents keyed by string; the store provides no querying
// or indexing.
type KeyValueStore interface {
	// Get returns the value stored under key. The boolean reports whether
	// the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key and its value entirely.
	Delete(ctx context.Context, key string) error
}
