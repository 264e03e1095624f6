package storage

import (
	"context"
	"maps"
	"sync"
)

// MemoryRepository keeps keys in a map. It is used by tests and by the
// "memory" storage backend, which forgets everything on exit.
type MemoryRepository struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryRepository returns an empty in-memory repository. Nothing
// survives the process.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string]string)}
}

// Get returns the value stored under key, or ErrNotFound.
func (m *MemoryRepository) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key, replacing any previous value.
func (m *MemoryRepository) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (m *MemoryRepository) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Batch runs fn against a copy of the data and swaps it in if fn succeeds.
func (m *MemoryRepository) Batch(ctx context.Context, fn func(ctx context.Context, kv KV) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := &MemoryRepository{data: maps.Clone(m.data)}
	if err := fn(ctx, staged); err != nil {
		return err
	}
	m.data = staged.data
	return nil
}

// Close is a no-op.
func (m *MemoryRepository) Close() error {
	return nil
}
