package history

import "time"

// Entry is one recorded AI interaction for a user.
type Entry struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	Type          string         `json:"type"`
	Role          string         `json:"role,omitempty"`
	CandidateName string         `json:"candidateName,omitempty"`
	Details       string         `json:"details,omitempty"`
	MatchScore    int            `json:"matchScore"`
	AtsScore      int            `json:"atsScore"`
	Payload       map[string]any `json:"analysis,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}
