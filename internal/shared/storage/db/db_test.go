package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenMigrateRoundtrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "app.db")

	database, err := Open(ctx, path, DefaultOptions())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer Close(database)

	if err := RunMigrations(ctx, database); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}

	// The migrated schema should accept writes to every table.
	_, err = database.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, name, created_at) VALUES ('u1', 'a@b.c', 'hash', 'Ada', '2026-01-01T00:00:00Z')`)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	_, err = database.ExecContext(ctx,
		`INSERT INTO history (id, user_id, type, created_at) VALUES ('h1', 'u1', 'analysis', 1)`)
	if err != nil {
		t.Fatalf("insert history: %v", err)
	}
	_, err = database.ExecContext(ctx,
		`INSERT INTO saved_resumes (id, user_id, title, content, type, created_at) VALUES ('r1', 'u1', 't', 'c', 'builder', '2026-01-01T00:00:00Z')`)
	if err != nil {
		t.Fatalf("insert resume: %v", err)
	}

	var count int
	if err := database.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d", count)
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(context.Background(), "  ", DefaultOptions()); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	database, err := Open(ctx, path, DefaultOptions())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer Close(database)

	if err := RunMigrations(ctx, database); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := RunMigrations(ctx, database); err != nil {
		t.Fatalf("second run: %v", err)
	}
}
