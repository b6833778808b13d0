package ai

import (
	"context"
	"errors"
)

// ErrUpstream marks failures of the remote AI call itself: transport errors,
// error statuses, or a response carrying no usable text. The raw provider
// error is wrapped for server-side logs but must never be shown to end users.
var ErrUpstream = errors.New("upstream AI request failed")

// Client defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.).
type Client interface {
	// GenerateText performs exactly one round-trip to the model and returns
	// the raw response text. schema, when non-nil, asks the provider to
	// constrain its output to the described JSON shape. No retries are
	// performed at this layer; cancellation and deadlines come from ctx.
	GenerateText(ctx context.Context, prompt string, schema *Schema) (string, error)
}
