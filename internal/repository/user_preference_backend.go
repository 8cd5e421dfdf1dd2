package repository

import (
	"context"
	"database/sql"
	"fmt"

	"newsapp/internal/model"
	"newsapp/internal/store"
)

type UserPreferenceBackend struct {
	db *sql.DB
}

func NewUserPreferenceBackend(db *sql.DB) *UserPreferenceBackend {
	return &UserPreferenceBackend{db: db}
}

func (b *UserPreferenceBackend) Insert(ctx context.Context, p model.UserPreference) (model.UserPreference, error) {
	err := b.db.QueryRowContext(ctx, `
		INSERT INTO user_preference(user_id, category_id, preference)
		VALUES($1, $2, $3)
		RETURNING user_preference_id
	`, p.UserID, p.CategoryID, p.Preference).Scan(&p.UserPreferenceID)
	if err != nil {
		return model.UserPreference{}, fmt.Errorf("insert user preference: %w", err)
	}
	return p, nil
}

func (b *UserPreferenceBackend) List(ctx context.Context) ([]model.UserPreference, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT user_preference_id, user_id, category_id, preference FROM user_preference
	`)
	if err != nil {
		return nil, fmt.Errorf("list user preferences: %w", err)
	}
	defer rows.Close()

	var prefs []model.UserPreference
	for rows.Next() {
		var p model.UserPreference
		if err := rows.Scan(&p.UserPreferenceID, &p.UserID, &p.CategoryID, &p.Preference); err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prefs, nil
}

func (b *UserPreferenceBackend) Find(ctx context.Context, id int64) (model.UserPreference, error) {
	var p model.UserPreference
	err := b.db.QueryRowContext(ctx, `
		SELECT user_preference_id, user_id, category_id, preference
		FROM user_preference WHERE user_preference_id = $1
	`, id).Scan(&p.UserPreferenceID, &p.UserID, &p.CategoryID, &p.Preference)
	if err == sql.ErrNoRows {
		return model.UserPreference{}, fmt.Errorf("user preference %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return model.UserPreference{}, err
	}
	return p, nil
}

func (b *UserPreferenceBackend) Replace(ctx context.Context, id int64, p model.UserPreference) (model.UserPreference, error) {
	result, err := b.db.ExecContext(ctx, `
		UPDATE user_preference SET user_id = $1, category_id = $2, preference = $3
		WHERE user_preference_id = $4
	`, p.UserID, p.CategoryID, p.Preference, id)
	if err != nil {
		return model.UserPreference{}, fmt.Errorf("update user preference %d: %w", id, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return model.UserPreference{}, fmt.Errorf("user preference %d: %w", id, store.ErrNotFound)
	}
	p.UserPreferenceID = id
	return p, nil
}

func (b *UserPreferenceBackend) Remove(ctx context.Context, id int64) (model.UserPreference, error) {
	p, err := b.Find(ctx, id)
	if err != nil {
		return model.UserPreference{}, err
	}
	if _, err := b.db.ExecContext(ctx, `DELETE FROM user_preference WHERE user_preference_id = $1`, id); err != nil {
		return model.UserPreference{}, fmt.Errorf("delete user preference %d: %w", id, err)
	}
	return p, nil
}
