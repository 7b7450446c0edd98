package history

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if err := svc.Record(context.Background(), Entry{UserID: "u1", Type: "analysis"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d", len(entries))
	}
	if entries[0].ID == "" {
		t.Fatal("ID not assigned")
	}
	if entries[0].CreatedAt.IsZero() {
		t.Fatal("CreatedAt not assigned")
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	base := time.Now()

	for i := 0; i < 3; i++ {
		err := svc.Record(context.Background(), Entry{
			UserID:    "u1",
			Type:      "analysis",
			Details:   fmt.Sprintf("entry-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, _ := svc.List(context.Background(), "u1")
	if entries[0].Details != "entry-2" || entries[2].Details != "entry-0" {
		t.Fatalf("not newest first: %v, %v", entries[0].Details, entries[2].Details)
	}
}

func TestCapEvictsOldest(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	base := time.Now()

	for i := 0; i < MaxEntriesPerUser+1; i++ {
		err := svc.Record(context.Background(), Entry{
			UserID:    "u1",
			Type:      "analysis",
			Details:   fmt.Sprintf("entry-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, _ := svc.List(context.Background(), "u1")
	if len(entries) != MaxEntriesPerUser {
		t.Fatalf("len = %d, want %d", len(entries), MaxEntriesPerUser)
	}
	// entry-0 was the oldest and should be gone.
	for _, e := range entries {
		if e.Details == "entry-0" {
			t.Fatal("oldest entry not evicted")
		}
	}
	if entries[0].Details != fmt.Sprintf("entry-%d", MaxEntriesPerUser) {
		t.Fatalf("newest = %s", entries[0].Details)
	}
}

func TestClearIsScopedToUser(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	svc.Record(context.Background(), Entry{UserID: "u1", Type: "analysis"})
	svc.Record(context.Background(), Entry{UserID: "u2", Type: "analysis"})

	if err := svc.Clear(context.Background(), "u1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	u1, _ := svc.List(context.Background(), "u1")
	u2, _ := svc.List(context.Background(), "u2")
	if len(u1) != 0 {
		t.Fatalf("u1 len = %d", len(u1))
	}
	if len(u2) != 1 {
		t.Fatalf("u2 len = %d", len(u2))
	}
}
