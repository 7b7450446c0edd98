package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLRepo persists accounts in the users table.
type SQLRepo struct {
	DB *sql.DB
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{DB: db}
}

func (r *SQLRepo) Create(ctx context.Context, user User) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, name, created_at) VALUES (?, ?, ?, ?, ?)`,
		user.ID, strings.ToLower(user.Email), user.PasswordHash, user.Name,
		user.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		// modernc.org/sqlite surfaces constraint failures as plain errors.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *SQLRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, created_at FROM users WHERE email = ?`,
		strings.ToLower(email),
	)

	var user User
	var created string
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	if ts, perr := time.Parse(time.RFC3339Nano, created); perr == nil {
		user.CreatedAt = ts
	}
	return user, nil
}
