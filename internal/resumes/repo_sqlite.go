package resumes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLRepo persists saved resumes in the saved_resumes table.
type SQLRepo struct {
	DB *sql.DB
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{DB: db}
}

func (r *SQLRepo) Create(ctx context.Context, resume SavedResume) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO saved_resumes (id, user_id, title, content, type, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		resume.ID, resume.UserID, resume.Title, resume.Content, resume.Type,
		resume.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

func (r *SQLRepo) ListByUser(ctx context.Context, userID string) ([]SavedResume, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, title, content, type, created_at
		 FROM saved_resumes WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	var out []SavedResume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

func (r *SQLRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM saved_resumes WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLRepo) LatestBuilder(ctx context.Context, userID string) (SavedResume, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, title, content, type, created_at
		 FROM saved_resumes WHERE user_id = ? AND type = 'builder'
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	)
	resume, err := scanResume(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedResume{}, ErrNotFound
	}
	return resume, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (SavedResume, error) {
	var resume SavedResume
	var created string
	err := row.Scan(&resume.ID, &resume.UserID, &resume.Title, &resume.Content, &resume.Type, &created)
	if err != nil {
		return SavedResume{}, err
	}
	if ts, perr := time.Parse(time.RFC3339Nano, created); perr == nil {
		resume.CreatedAt = ts
	}
	return resume, nil
}
