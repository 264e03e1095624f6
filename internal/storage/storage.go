// Package storage is the local key/value store behind the application: named
// keys holding strings (usually JSON documents). It comes in two flavours, a
// SQLite file and an in-memory map.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("key not found")

// KV is the get/set/remove contract on named keys.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Repository is a KV that can also apply several writes atomically and be
// closed.
type Repository interface {
	KV

	// Batch runs fn against a transactional view of the store. Writes made
	// through that view are applied together if fn returns nil and discarded
	// otherwise.
	Batch(ctx context.Context, fn func(ctx context.Context, kv KV) error) error

	// Close releases underlying resources.
	Close() error
}
