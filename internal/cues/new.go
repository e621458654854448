package cues

import (
	"github.com/chech0x/youtube-cue-generator/internal/llm"
	"github.com/chech0x/youtube-cue-generator/internal/logger"
)

type implExtractor struct {
	gen      llm.Generator
	policy   llm.RetryPolicy
	template string
	logger   logger.Logger
}

// New creates an Extractor that fills the given prompt template and calls
// the generator through the shared retry policy.
func New(gen llm.Generator, policy llm.RetryPolicy, template string, log logger.Logger) Extractor {
	return &implExtractor{
		gen:      gen,
		policy:   policy,
		template: template,
		logger:   log,
	}
}
