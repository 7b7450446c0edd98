package resumes

import "time"

// SavedResume is a stored resume document. Content is either raw text or, for
// builder resumes, a JSON document produced by the resume builder UI.
type SavedResume struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}
