package providers

import (
	"context"
	"fmt"
)

// CompletionRequest contains the data sent to the completion backend.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// CompletionResponse contains the raw response from the backend.
type CompletionResponse struct {
	Content    string
	TokensUsed int
}

// Completer is the completion backend abstraction. One call, one prompt, one
// opaque text response; the caller owns everything after that.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
	Name() string
}

// New creates a completion client by provider name.
func New(provider, model string) (Completer, error) {
	switch provider {
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
