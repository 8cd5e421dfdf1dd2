package store

import (
	"context"
	"fmt"
	"sync"
)

// MemoryBackend keeps rows in a map with auto-assigned ids. Used by tests
// across packages in place of the Postgres backends.
type MemoryBackend[T any] struct {
	mu     sync.Mutex
	rows   map[int64]T
	nextID int64
	setID  func(T, int64) T
}

// NewMemoryBackend builds a backend for entities whose identity is stamped
// by setID on insert.
func NewMemoryBackend[T any](setID func(T, int64) T) *MemoryBackend[T] {
	return &MemoryBackend[T]{rows: make(map[int64]T), nextID: 1, setID: setID}
}

func (b *MemoryBackend[T]) Insert(_ context.Context, item T) (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	item = b.setID(item, b.nextID)
	b.rows[b.nextID] = item
	b.nextID++
	return item, nil
}

func (b *MemoryBackend[T]) List(_ context.Context) ([]T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := make([]T, 0, len(b.rows))
	for id := int64(1); id < b.nextID; id++ {
		if item, ok := b.rows[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (b *MemoryBackend[T]) Find(_ context.Context, id int64) (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	item, ok := b.rows[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return item, nil
}

func (b *MemoryBackend[T]) Replace(_ context.Context, id int64, item T) (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.rows[id]; !ok {
		var zero T
		return zero, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	item = b.setID(item, id)
	b.rows[id] = item
	return item, nil
}

func (b *MemoryBackend[T]) Remove(_ context.Context, id int64) (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	item, ok := b.rows[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	delete(b.rows, id)
	return item, nil
}
