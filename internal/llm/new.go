package llm

import (
	"context"
	"fmt"

	"github.com/chech0x/youtube-cue-generator/internal/config"
)

// NewFromConfig builds the Generator selected by llm.backend.
func NewFromConfig(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	switch cfg.Backend {
	case config.BackendOpenRouter, "":
		return NewOpenRouter(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case config.BackendGemini:
		return NewGemini(ctx, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}

// PolicyFromConfig builds the shared truncation-retry policy.
func PolicyFromConfig(cfg config.LLMConfig) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   cfg.MaxAttempts,
		InitialTokens: cfg.MaxOutputTokens,
	}
}
