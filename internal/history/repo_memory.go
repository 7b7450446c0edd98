package history

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is the in-memory fallback used when no database is available.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: make(map[string][]Entry)}
}

func (r *MemoryRepo) Append(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := append(r.entries[entry.UserID], entry)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	if len(list) > MaxEntriesPerUser {
		list = list[len(list)-MaxEntriesPerUser:]
	}
	r.entries[entry.UserID] = list
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.entries[userID]
	out := make([]Entry, len(stored))
	for i, e := range stored {
		out[len(stored)-1-i] = e
	}
	return out, nil
}

func (r *MemoryRepo) ClearByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, userID)
	return nil
}
