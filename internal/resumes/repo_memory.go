package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is the in-memory fallback used when no database is available.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string][]SavedResume
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resumes: make(map[string][]SavedResume)}
}

func (r *MemoryRepo) Create(ctx context.Context, resume SavedResume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[resume.UserID] = append(r.resumes[resume.UserID], resume)
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]SavedResume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]SavedResume(nil), r.resumes[userID]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.resumes[userID]
	for i, resume := range list {
		if resume.ID == id {
			r.resumes[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) LatestBuilder(ctx context.Context, userID string) (SavedResume, error) {
	list, _ := r.ListByUser(ctx, userID)
	for _, resume := range list {
		if resume.Type == "builder" {
			return resume, nil
		}
	}
	return SavedResume{}, ErrNotFound
}
