package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service assigns identity and timestamps before delegating to the repo.
type Service struct {
	Repo Repo
	now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// Record stores the entry, generating an ID and timestamp if unset.
func (s *Service) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	return s.Repo.Append(ctx, entry)
}

// List returns the user's history newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Clear removes the user's history.
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.Repo.ClearByUser(ctx, userID)
}
