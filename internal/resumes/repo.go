package resumes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resume not found")

// Repo stores saved resumes.
type Repo interface {
	Create(ctx context.Context, resume SavedResume) error
	// ListByUser returns the user's resumes newest first.
	ListByUser(ctx context.Context, userID string) ([]SavedResume, error)
	// Delete removes the user's resume by id; ErrNotFound if absent.
	Delete(ctx context.Context, userID, id string) error
	// LatestBuilder returns the user's most recent builder-type resume.
	LatestBuilder(ctx context.Context, userID string) (SavedResume, error)
}
