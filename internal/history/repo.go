package history

import "context"

// MaxEntriesPerUser caps stored history; the oldest entries are evicted once
// the cap is exceeded.
const MaxEntriesPerUser = 50

// Repo stores history entries.
type Repo interface {
	// Append stores an entry and evicts the user's oldest entries beyond the
	// per-user cap.
	Append(ctx context.Context, entry Entry) error
	// ListByUser returns the user's entries newest first.
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	// ClearByUser removes all of the user's entries.
	ClearByUser(ctx context.Context, userID string) error
}
