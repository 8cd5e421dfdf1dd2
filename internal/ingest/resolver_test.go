package ingest

import (
	"context"
	"testing"

	"newsapp/internal/model"
	"newsapp/internal/store"

	"github.com/go-playground/assert/v2"
)

func newCategoryStore() *store.Store[model.Category] {
	backend := store.NewMemoryBackend(func(c model.Category, id int64) model.Category {
		c.CategoryID = id
		return c
	})
	schema := store.NewSchema[model.Category]("Category").
		Int("CategoryID", func(c model.Category) int64 { return c.CategoryID }).
		String("Name", func(c model.Category) string { return c.Name }).
		String("Description", func(c model.Category) string { return c.Description }).
		String("Type", func(c model.Category) string { return c.Type })
	return store.New(backend, schema)
}

func TestResolve_CreatesOnFirstSight(t *testing.T) {
	ctx := context.Background()
	categories := newCategoryStore()
	resolver := NewCategoryResolver(categories)

	created, err := resolver.Resolve(ctx, "WORLD", true)
	assert.Equal(t, nil, err)
	assert.Equal(t, "WORLD", created.Description)
	assert.Equal(t, "World", created.Name)
	assert.Equal(t, model.CategoryTypeCustom, created.Type)
	assert.NotEqual(t, int64(0), created.CategoryID)
}

func TestResolve_Idempotent(t *testing.T) {
	ctx := context.Background()
	categories := newCategoryStore()
	resolver := NewCategoryResolver(categories)

	first, err := resolver.Resolve(ctx, "tech", true)
	assert.Equal(t, nil, err)

	second, err := resolver.Resolve(ctx, "tech", true)
	assert.Equal(t, nil, err)
	assert.Equal(t, first.CategoryID, second.CategoryID)

	all, err := categories.GetMany(ctx, "", "")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(all))
}

func TestResolve_NativeType(t *testing.T) {
	ctx := context.Background()
	resolver := NewCategoryResolver(newCategoryStore())

	created, err := resolver.Resolve(ctx, "sports", false)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CategoryTypeNews, created.Type)
}
