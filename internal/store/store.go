package store

import (
	"context"
	"fmt"
	"strconv"
)

// Backend is the durable CRUD surface a Store filters over. Implementations
// must return ErrNotFound (wrapped or bare) from Find, Replace and Remove
// when the id does not resolve to a row.
type Backend[T any] interface {
	Insert(ctx context.Context, item T) (T, error)
	List(ctx context.Context) ([]T, error)
	Find(ctx context.Context, id int64) (T, error)
	Replace(ctx context.Context, id int64, item T) (T, error)
	Remove(ctx context.Context, id int64) (T, error)
}

// Store is the generic entity store shared by ingestion and the API layer.
// Filtered reads run the schema predicate over the backend's rows.
type Store[T any] struct {
	backend Backend[T]
	schema  *Schema[T]
}

func New[T any](backend Backend[T], schema *Schema[T]) *Store[T] {
	return &Store[T]{backend: backend, schema: schema}
}

// Add persists the item and returns it with its assigned identity.
func (s *Store[T]) Add(ctx context.Context, item T) (T, error) {
	return s.backend.Insert(ctx, item)
}

// GetOne returns the first item matching the filter, or ErrNotFound. With
// non-unique fields the pick among multiple matches is unspecified.
func (s *Store[T]) GetOne(ctx context.Context, field, value string) (T, error) {
	var zero T
	matches, err := s.filtered(ctx, field, value)
	if err != nil {
		return zero, err
	}
	if len(matches) == 0 {
		return zero, fmt.Errorf("%s=%q: %w", field, value, ErrNotFound)
	}
	return matches[0], nil
}

// GetMany returns every matching item. An empty field and value pair means
// no filter. Zero matches is reported as ErrNoItemsAvailable.
func (s *Store[T]) GetMany(ctx context.Context, field, value string) ([]T, error) {
	matches, err := s.filtered(ctx, field, value)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s=%q: %w", field, value, ErrNoItemsAvailable)
	}
	return matches, nil
}

// Update replaces the row the string key resolves to and returns the stored
// form.
func (s *Store[T]) Update(ctx context.Context, item T, key string) (T, error) {
	var zero T
	id, err := parseKey(key)
	if err != nil {
		return zero, err
	}
	return s.backend.Replace(ctx, id, item)
}

// Delete removes the row the string key resolves to and returns it.
func (s *Store[T]) Delete(ctx context.Context, key string) (T, error) {
	var zero T
	id, err := parseKey(key)
	if err != nil {
		return zero, err
	}
	return s.backend.Remove(ctx, id)
}

func (s *Store[T]) filtered(ctx context.Context, field, value string) ([]T, error) {
	items, err := s.backend.List(ctx)
	if err != nil {
		return nil, err
	}
	if field == "" && value == "" {
		return items, nil
	}

	match, err := s.schema.Match(field, value)
	if err != nil {
		return nil, err
	}

	var matches []T
	for _, item := range items {
		if match(item) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func parseKey(key string) (int64, error) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("key %q is not a numeric id: %w", key, ErrInvalidArgument)
	}
	return id, nil
}
