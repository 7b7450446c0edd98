package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyContent = errors.New("resume content is empty")

// Service implements saving and retrieving resumes for a user.
type Service struct {
	Repo Repo
	now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// Save stores a resume document, defaulting title and type.
func (s *Service) Save(ctx context.Context, userID, title, content, resumeType string) (SavedResume, error) {
	if strings.TrimSpace(content) == "" {
		return SavedResume{}, ErrEmptyContent
	}
	if strings.TrimSpace(title) == "" {
		title = "Untitled Resume"
	}
	if strings.TrimSpace(resumeType) == "" {
		resumeType = "builder"
	}

	resume := SavedResume{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Type:      resumeType,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return SavedResume{}, err
	}
	return resume, nil
}

// SaveBuilder stores a resume-builder document, titling it from the builder's
// personal.fullName field when present.
func (s *Service) SaveBuilder(ctx context.Context, userID string, resumeData map[string]any) (SavedResume, error) {
	if len(resumeData) == 0 {
		return SavedResume{}, ErrEmptyContent
	}

	title := "My Resume"
	if personal, ok := resumeData["personal"].(map[string]any); ok {
		if name, ok := personal["fullName"].(string); ok && strings.TrimSpace(name) != "" {
			title = name
		}
	}

	content, err := json.Marshal(resumeData)
	if err != nil {
		return SavedResume{}, err
	}
	return s.Save(ctx, userID, title, string(content), "builder")
}

// List returns the user's resumes newest first.
func (s *Service) List(ctx context.Context, userID string) ([]SavedResume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Delete removes one of the user's resumes.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}

// LatestBuilderContent returns the decoded content of the user's most recent
// builder resume, or nil when none exists or the content is not JSON.
func (s *Service) LatestBuilderContent(ctx context.Context, userID string) (map[string]any, error) {
	resume, err := s.Repo.LatestBuilder(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var content map[string]any
	if err := json.Unmarshal([]byte(resume.Content), &content); err != nil {
		return nil, nil
	}
	return content, nil
}
