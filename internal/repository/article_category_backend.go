package repository

import (
	"context"
	"database/sql"
	"fmt"

	"newsapp/internal/model"
	"newsapp/internal/store"
)

// ArticleCategoryBackend persists article-category links. Rows cascade away
// with their article or category.
type ArticleCategoryBackend struct {
	db *sql.DB
}

func NewArticleCategoryBackend(db *sql.DB) *ArticleCategoryBackend {
	return &ArticleCategoryBackend{db: db}
}

func (b *ArticleCategoryBackend) Insert(ctx context.Context, ac model.ArticleCategory) (model.ArticleCategory, error) {
	err := b.db.QueryRowContext(ctx, `
		INSERT INTO article_category(article_id, category_id)
		VALUES($1, $2)
		RETURNING article_category_id
	`, ac.ArticleID, ac.CategoryID).Scan(&ac.ArticleCategoryID)
	if err != nil {
		return model.ArticleCategory{}, fmt.Errorf("insert article category: %w", err)
	}
	return ac, nil
}

func (b *ArticleCategoryBackend) List(ctx context.Context) ([]model.ArticleCategory, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT article_category_id, article_id, category_id FROM article_category
	`)
	if err != nil {
		return nil, fmt.Errorf("list article categories: %w", err)
	}
	defer rows.Close()

	var links []model.ArticleCategory
	for rows.Next() {
		var ac model.ArticleCategory
		if err := rows.Scan(&ac.ArticleCategoryID, &ac.ArticleID, &ac.CategoryID); err != nil {
			return nil, err
		}
		links = append(links, ac)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return links, nil
}

func (b *ArticleCategoryBackend) Find(ctx context.Context, id int64) (model.ArticleCategory, error) {
	var ac model.ArticleCategory
	err := b.db.QueryRowContext(ctx, `
		SELECT article_category_id, article_id, category_id
		FROM article_category WHERE article_category_id = $1
	`, id).Scan(&ac.ArticleCategoryID, &ac.ArticleID, &ac.CategoryID)
	if err == sql.ErrNoRows {
		return model.ArticleCategory{}, fmt.Errorf("article category %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return model.ArticleCategory{}, err
	}
	return ac, nil
}

func (b *ArticleCategoryBackend) Replace(ctx context.Context, id int64, ac model.ArticleCategory) (model.ArticleCategory, error) {
	result, err := b.db.ExecContext(ctx, `
		UPDATE article_category SET article_id = $1, category_id = $2
		WHERE article_category_id = $3
	`, ac.ArticleID, ac.CategoryID, id)
	if err != nil {
		return model.ArticleCategory{}, fmt.Errorf("update article category %d: %w", id, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return model.ArticleCategory{}, fmt.Errorf("article category %d: %w", id, store.ErrNotFound)
	}
	ac.ArticleCategoryID = id
	return ac, nil
}

func (b *ArticleCategoryBackend) Remove(ctx context.Context, id int64) (model.ArticleCategory, error) {
	ac, err := b.Find(ctx, id)
	if err != nil {
		return model.ArticleCategory{}, err
	}
	if _, err := b.db.ExecContext(ctx, `DELETE FROM article_category WHERE article_category_id = $1`, id); err != nil {
		return model.ArticleCategory{}, fmt.Errorf("delete article category %d: %w", id, err)
	}
	return ac, nil
}
