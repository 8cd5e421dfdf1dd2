package repository

import (
	"context"
	"database/sql"
	"fmt"

	"newsapp/internal/model"
	"newsapp/internal/store"
)

// CategoryBackend persists categories. description carries a UNIQUE
// constraint so lookup-then-create races cannot leave duplicates.
type CategoryBackend struct {
	db *sql.DB
}

func NewCategoryBackend(db *sql.DB) *CategoryBackend {
	return &CategoryBackend{db: db}
}

func (b *CategoryBackend) Insert(ctx context.Context, c model.Category) (model.Category, error) {
	err := b.db.QueryRowContext(ctx, `
		INSERT INTO category(name, description, type)
		VALUES($1, $2, $3)
		RETURNING category_id
	`, c.Name, c.Description, c.Type).Scan(&c.CategoryID)
	if err != nil {
		return model.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (b *CategoryBackend) List(ctx context.Context) ([]model.Category, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT category_id, name, description, type FROM category
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Description, &c.Type); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (b *CategoryBackend) Find(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := b.db.QueryRowContext(ctx, `
		SELECT category_id, name, description, type FROM category WHERE category_id = $1
	`, id).Scan(&c.CategoryID, &c.Name, &c.Description, &c.Type)
	if err == sql.ErrNoRows {
		return model.Category{}, fmt.Errorf("category %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (b *CategoryBackend) Replace(ctx context.Context, id int64, c model.Category) (model.Category, error) {
	result, err := b.db.ExecContext(ctx, `
		UPDATE category SET name = $1, description = $2, type = $3 WHERE category_id = $4
	`, c.Name, c.Description, c.Type, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("update category %d: %w", id, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return model.Category{}, fmt.Errorf("category %d: %w", id, store.ErrNotFound)
	}
	c.CategoryID = id
	return c, nil
}

func (b *CategoryBackend) Remove(ctx context.Context, id int64) (model.Category, error) {
	c, err := b.Find(ctx, id)
	if err != nil {
		return model.Category{}, err
	}
	if _, err := b.db.ExecContext(ctx, `DELETE FROM category WHERE category_id = $1`, id); err != nil {
		return model.Category{}, fmt.Errorf("delete category %d: %w", id, err)
	}
	return c, nil
}
