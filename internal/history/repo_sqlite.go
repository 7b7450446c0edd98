package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// SQLRepo persists history in the history table. created_at is stored as unix
// nanoseconds so eviction and list ordering stay strict even for entries
// written in the same millisecond.
type SQLRepo struct {
	DB *sql.DB
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{DB: db}
}

func (r *SQLRepo) Append(ctx context.Context, entry Entry) error {
	var payload any
	if entry.Payload != nil {
		raw, err := json.Marshal(entry.Payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		payload = string(raw)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO history (id, user_id, type, role, candidate_name, details, match_score, ats_score, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Type, entry.Role, entry.CandidateName,
		entry.Details, entry.MatchScore, entry.AtsScore, payload, entry.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM history WHERE user_id = ? AND id NOT IN (
		   SELECT id FROM history WHERE user_id = ? ORDER BY created_at DESC LIMIT ?
		 )`,
		entry.UserID, entry.UserID, MaxEntriesPerUser,
	)
	if err != nil {
		return fmt.Errorf("evict history: %w", err)
	}

	return tx.Commit()
}

func (r *SQLRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, type, role, candidate_name, details, match_score, ats_score, payload, created_at
		 FROM history WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var payload sql.NullString
		var createdNanos int64
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Role, &e.CandidateName,
			&e.Details, &e.MatchScore, &e.AtsScore, &payload, &createdNanos); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		if payload.Valid && payload.String != "" {
			if err := json.Unmarshal([]byte(payload.String), &e.Payload); err != nil {
				return nil, fmt.Errorf("decode payload: %w", err)
			}
		}
		e.CreatedAt = time.Unix(0, createdNanos)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLRepo) ClearByUser(ctx context.Context, userID string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM history WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
