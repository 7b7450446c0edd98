package analyses

import (
	"context"
	"errors"

	"resume-ai-backend/internal/llm"
	"resume-ai-backend/internal/shared/telemetry"
)

const (
	maxInferAttempts = 3
	fallbackSentinel = "{}"
)

// Completion is the outcome of an inference round. When Fallback is set the
// upstream call failed and Content holds the empty-object sentinel, which the
// normalizer turns into a fully backfilled result.
type Completion struct {
	Content  string
	Fallback bool
}

// infer runs the completion with a bounded attempt budget. A missing
// credential is the only error that escapes; any other upstream failure
// degrades to the fallback sentinel immediately so the request stays fast
// instead of stacking timeouts.
func infer(ctx context.Context, client llm.Client, prompt string) (Completion, error) {
	var lastErr error
	for attempt := 1; attempt <= maxInferAttempts; attempt++ {
		content, err := client.Complete(ctx, prompt)
		if err == nil {
			return Completion{Content: content}, nil
		}
		if errors.Is(err, llm.ErrNotConfigured) {
			return Completion{}, err
		}
		lastErr = err
		telemetry.Warn("inference.attempt_failed", map[string]any{
			"attempt": attempt,
			"error":   err.Error(),
		})
		// One failure already cost the full upstream timeout. Serve the
		// degraded result now rather than make the client wait out retries.
		break
	}
	telemetry.Error("inference.fallback", map[string]any{"error": lastErr.Error()})
	return Completion{Content: fallbackSentinel, Fallback: true}, nil
}
