package llm

import (
	"context"
	"errors"
)

// Client abstracts the upstream chat-completion provider.
type Client interface {
	// Complete sends a single-prompt completion request and returns the raw
	// message content of the first choice.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned when no provider credential is available. It is
// the only inference failure that surfaces to callers as a server error; all
// other upstream failures are absorbed by the fallback pipeline.
var ErrNotConfigured = errors.New("llm client not configured")

// Unconfigured is the stand-in client used when no credential is present.
type Unconfigured struct{}

// Complete always fails with ErrNotConfigured.
func (Unconfigured) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
