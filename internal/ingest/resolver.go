package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsapp/internal/model"
	"newsapp/internal/store"
)

// CategoryResolver maps raw feed labels to stored categories, creating them
// on first sight. Description is the natural key; repeated labels never
// create duplicates.
type CategoryResolver struct {
	categories *store.Store[model.Category]
}

func NewCategoryResolver(categories *store.Store[model.Category]) *CategoryResolver {
	return &CategoryResolver{categories: categories}
}

func (r *CategoryResolver) Resolve(ctx context.Context, label string, custom bool) (model.Category, error) {
	existing, err := r.categories.GetOne(ctx, "Description", label)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.Category{}, fmt.Errorf("look up category %q: %w", label, err)
	}

	categoryType := model.CategoryTypeNews
	if custom {
		categoryType = model.CategoryTypeCustom
	}

	created, err := r.categories.Add(ctx, model.Category{
		Description: label,
		Name:        displayName(label),
		Type:        categoryType,
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("create category %q: %w", label, err)
	}
	return created, nil
}

// displayName capitalizes the first character and lower-cases the rest.
func displayName(label string) string {
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + strings.ToLower(label[1:])
}
