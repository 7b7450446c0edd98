package analyses

import (
	"context"
	"errors"
	"os"
	"time"

	"resume-ai-backend/internal/extract"
	"resume-ai-backend/internal/llm"
	"resume-ai-backend/internal/shared/telemetry"
)

// ErrNoFile indicates the request carried no resume upload.
var ErrNoFile = errors.New("no resume file uploaded")

// Upload describes a temp file staged for analysis.
type Upload struct {
	Path     string
	MimeType string
	Size     int64
}

// SuccessHook runs after normalization, typically to record a history entry.
// Hook failures never fail the request.
type SuccessHook func(ctx context.Context, result map[string]any, resumeText string)

// Service runs the resume pipeline: read the staged upload, extract text,
// build the prompt, infer, normalize, then fire the hook and schedule cleanup.
type Service struct {
	LLM          llm.Client
	Normalizer   *Normalizer
	CleanupDelay time.Duration
}

// NewService wires a pipeline service with the default normalizer.
func NewService(client llm.Client, cleanupDelay time.Duration) *Service {
	if cleanupDelay <= 0 {
		cleanupDelay = time.Second
	}
	return &Service{
		LLM:          client,
		Normalizer:   NewNormalizer(),
		CleanupDelay: cleanupDelay,
	}
}

// Handle runs one feature request end to end. The hook may be nil.
func (s *Service) Handle(ctx context.Context, upload Upload, build llm.PromptBuilder, pc llm.PromptContext, hook SuccessHook) (map[string]any, error) {
	if upload.Path == "" {
		return nil, ErrNoFile
	}

	// Cleanup is scheduled up front so the staged file goes away even when a
	// later step fails.
	s.scheduleCleanup(upload.Path)

	data, err := os.ReadFile(upload.Path)
	if err != nil {
		return nil, err
	}

	resumeText := extract.Text(data, upload.MimeType)
	prompt := build(resumeText, pc)

	completion, err := infer(ctx, s.LLM, prompt)
	if err != nil {
		return nil, err
	}

	result := s.Normalizer.Normalize(completion.Content)

	if hook != nil {
		hook(ctx, result, resumeText)
	}

	// The no-JSON shape keeps the model output in "raw"; every other result
	// carries the extracted resume text.
	if success, ok := result["success"].(bool); ok && !success {
		return result, nil
	}

	result["raw"] = resumeText
	return result, nil
}

// scheduleCleanup deletes the staged upload after a short delay, leaving a
// window for any same-request re-reads.
func (s *Service) scheduleCleanup(path string) {
	time.AfterFunc(s.CleanupDelay, func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			telemetry.Warn("upload.cleanup_failed", map[string]any{
				"path":  path,
				"error": err.Error(),
			})
		}
	})
}
