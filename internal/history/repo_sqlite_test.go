package history

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSQLRepoAppendInsertsAndEvicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	entry := Entry{
		ID:            "id-1",
		UserID:        "u1",
		Type:          "analysis",
		Role:          "SRE",
		CandidateName: "Ada",
		MatchScore:    80,
		AtsScore:      90,
		Payload:       map[string]any{"summary": "ok"},
		CreatedAt:     time.Unix(0, 1234),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO history").
		WithArgs(entry.ID, entry.UserID, entry.Type, entry.Role, entry.CandidateName,
			"", entry.MatchScore, entry.AtsScore, `{"summary":"ok"}`, int64(1234)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM history").
		WithArgs(entry.UserID, entry.UserID, MaxEntriesPerUser).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := NewSQLRepo(db)
	if err := repo.Append(context.Background(), entry); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSQLRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "type", "role", "candidate_name", "details",
		"match_score", "ats_score", "payload", "created_at",
	}).
		AddRow("id-2", "u1", "roast", "PM", "Roast Victim", "", 70, 0, nil, int64(2000)).
		AddRow("id-1", "u1", "analysis", "SRE", "Ada", "", 80, 90, `{"summary":"ok"}`, int64(1000))

	mock.ExpectQuery("SELECT (.+) FROM history WHERE user_id").
		WithArgs("u1").
		WillReturnRows(rows)

	repo := NewSQLRepo(db)
	entries, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d", len(entries))
	}
	if entries[0].ID != "id-2" || entries[1].ID != "id-1" {
		t.Fatalf("order: %s, %s", entries[0].ID, entries[1].ID)
	}
	if entries[1].Payload["summary"] != "ok" {
		t.Fatalf("payload = %v", entries[1].Payload)
	}
	if entries[1].CreatedAt.UnixNano() != 1000 {
		t.Fatalf("created_at = %d", entries[1].CreatedAt.UnixNano())
	}
}

func TestSQLRepoClearByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM history WHERE user_id").
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewSQLRepo(db)
	if err := repo.ClearByUser(context.Background(), "u1"); err != nil {
		t.Fatalf("ClearByUser: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
