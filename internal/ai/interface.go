package ai

import (
	"context"
	"net/http"
	"time"
)

// Provider defines the contract for interacting with completion vendors.
// This interface allows swapping providers (Claude, DeepSeek, OpenAI, Gemini)
// and the built-in simulator without touching the orchestrator.
type Provider interface {
	// Name identifies the vendor ("claude", "deepseek", ...).
	Name() string

	// GenerateCompletion sends prompt to the vendor and returns the raw
	// completion text. Transport and API failures are returned as errors;
	// callers degrade to canned content rather than propagating them.
	GenerateCompletion(ctx context.Context, prompt string, opts Options) (string, error)
}

// Options bounds a single completion call.
type Options struct {
	MaxTokens   int
	Temperature float64
}

const (
	DefaultMaxTokens   = 2000
	DefaultTemperature = 0.7
)

func (o Options) withDefaults() Options {
	if o.MaxTokens <= 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.Temperature <= 0 {
		o.Temperature = DefaultTemperature
	}
	return o
}

// httpClient is shared by all vendor requests; the 30s timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// chatMessage is the single-turn message shape shared by the OpenAI-style
// vendors (DeepSeek, OpenAI) and Claude.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest is the OpenAI-style request envelope.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

// chatCompletionResponse is the OpenAI-style response envelope.
type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
