// Package llm talks to hosted chat-completion APIs.
package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ChatRequest is a single system+user exchange.
type ChatRequest struct {
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Completer sends one chat exchange and returns the model's text.
// Errors returned by implementations are *domain.UpstreamError.
type Completer interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
	Provider() string
}

type Options struct {
	Provider string
	APIKey   string
	BaseURL  string
}

// New builds the completer for opts.Provider. It returns a nil Completer and
// no error when no API key is configured.
func New(opts Options) (Completer, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, nil
	}

	switch strings.ToLower(opts.Provider) {
	case "", ProviderOpenAI:
		return NewOpenAI(opts.APIKey, opts.BaseURL), nil
	case ProviderAnthropic:
		return NewAnthropic(opts.APIKey, opts.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", opts.Provider)
	}
}
