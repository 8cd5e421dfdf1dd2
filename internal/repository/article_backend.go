package repository

import (
	"context"
	"database/sql"
	"fmt"

	"newsapp/internal/model"
	"newsapp/internal/store"
)

const articleColumns = `article_id, hash_id, old_hash_id, title, content, summary,
		img_url, origin_url, created_at, added_at, imp_score, status,
		share_count, save_count, comment_count`

// ArticleBackend persists articles in Postgres. The UNIQUE constraint on
// hash_id is the last line of defense against concurrent duplicate inserts.
type ArticleBackend struct {
	db *sql.DB
}

func NewArticleBackend(db *sql.DB) *ArticleBackend {
	return &ArticleBackend{db: db}
}

func (b *ArticleBackend) Insert(ctx context.Context, a model.Article) (model.Article, error) {
	err := b.db.QueryRowContext(ctx, `
		INSERT INTO article(hash_id, old_hash_id, title, content, summary,
			img_url, origin_url, created_at, added_at, imp_score, status,
			share_count, save_count, comment_count)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING article_id
	`, a.HashID, a.OldHashID, a.Title, a.Content, a.Summary,
		a.ImgURL, a.OriginURL, a.CreatedAt, a.AddedAt, a.ImpScore, int(a.Status),
		a.ShareCount, a.SaveCount, a.CommentCount).Scan(&a.ArticleID)
	if err != nil {
		return model.Article{}, fmt.Errorf("insert article: %w", err)
	}
	return a, nil
}

func (b *ArticleBackend) List(ctx context.Context) ([]model.Article, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT `+articleColumns+` FROM article`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (b *ArticleBackend) Find(ctx context.Context, id int64) (model.Article, error) {
	row := b.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM article WHERE article_id = $1`, id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return model.Article{}, fmt.Errorf("article %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return model.Article{}, err
	}
	return a, nil
}

func (b *ArticleBackend) Replace(ctx context.Context, id int64, a model.Article) (model.Article, error) {
	result, err := b.db.ExecContext(ctx, `
		UPDATE article SET hash_id = $1, old_hash_id = $2, title = $3,
			content = $4, summary = $5, img_url = $6, origin_url = $7,
			created_at = $8, added_at = $9, imp_score = $10, status = $11,
			share_count = $12, save_count = $13, comment_count = $14
		WHERE article_id = $15
	`, a.HashID, a.OldHashID, a.Title, a.Content, a.Summary, a.ImgURL,
		a.OriginURL, a.CreatedAt, a.AddedAt, a.ImpScore, int(a.Status),
		a.ShareCount, a.SaveCount, a.CommentCount, id)
	if err != nil {
		return model.Article{}, fmt.Errorf("update article %d: %w", id, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return model.Article{}, fmt.Errorf("article %d: %w", id, store.ErrNotFound)
	}
	a.ArticleID = id
	return a, nil
}

func (b *ArticleBackend) Remove(ctx context.Context, id int64) (model.Article, error) {
	a, err := b.Find(ctx, id)
	if err != nil {
		return model.Article{}, err
	}
	if _, err := b.db.ExecContext(ctx, `DELETE FROM article WHERE article_id = $1`, id); err != nil {
		return model.Article{}, fmt.Errorf("delete article %d: %w", id, err)
	}
	return a, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (model.Article, error) {
	var a model.Article
	var status int
	err := row.Scan(&a.ArticleID, &a.HashID, &a.OldHashID, &a.Title, &a.Content,
		&a.Summary, &a.ImgURL, &a.OriginURL, &a.CreatedAt, &a.AddedAt,
		&a.ImpScore, &status, &a.ShareCount, &a.SaveCount, &a.CommentCount)
	if err != nil {
		return model.Article{}, err
	}
	a.Status = model.ArticleStatus(status)
	return a, nil
}
