package repository

import (
	"context"
	"database/sql"
	"fmt"

	"newsapp/internal/model"
	"newsapp/internal/store"
)

type UserBackend struct {
	db *sql.DB
}

func NewUserBackend(db *sql.DB) *UserBackend {
	return &UserBackend{db: db}
}

func (b *UserBackend) Insert(ctx context.Context, u model.User) (model.User, error) {
	err := b.db.QueryRowContext(ctx, `
		INSERT INTO app_user(name, email, oauth_id, oauth_token, role)
		VALUES($1, $2, $3, $4, $5)
		RETURNING user_id
	`, u.Name, u.Email, u.OAuthID, u.OAuthToken, int(u.Role)).Scan(&u.UserID)
	if err != nil {
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (b *UserBackend) List(ctx context.Context) ([]model.User, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT user_id, name, email, oauth_id, oauth_token, role FROM app_user
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (b *UserBackend) Find(ctx context.Context, id int64) (model.User, error) {
	row := b.db.QueryRowContext(ctx, `
		SELECT user_id, name, email, oauth_id, oauth_token, role FROM app_user WHERE user_id = $1
	`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return model.User{}, fmt.Errorf("user %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (b *UserBackend) Replace(ctx context.Context, id int64, u model.User) (model.User, error) {
	result, err := b.db.ExecContext(ctx, `
		UPDATE app_user SET name = $1, email = $2, oauth_id = $3, oauth_token = $4, role = $5
		WHERE user_id = $6
	`, u.Name, u.Email, u.OAuthID, u.OAuthToken, int(u.Role), id)
	if err != nil {
		return model.User{}, fmt.Errorf("update user %d: %w", id, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return model.User{}, fmt.Errorf("user %d: %w", id, store.ErrNotFound)
	}
	u.UserID = id
	return u, nil
}

func (b *UserBackend) Remove(ctx context.Context, id int64) (model.User, error) {
	u, err := b.Find(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	if _, err := b.db.ExecContext(ctx, `DELETE FROM app_user WHERE user_id = $1`, id); err != nil {
		return model.User{}, fmt.Errorf("delete user %d: %w", id, err)
	}
	return u, nil
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	var role int
	err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.OAuthID, &u.OAuthToken, &role)
	if err != nil {
		return model.User{}, err
	}
	u.Role = model.UserRole(role)
	return u, nil
}
