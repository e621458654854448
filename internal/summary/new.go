package summary

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

// New creates an Extractor sharing the same retry machinery as cue
// extraction, differing only in schema and prompt template.
func New(gen llm.Generator, policy llm.RetryPolicy, template string, log logger.Logger) Extractor {
	return &implExtractor{
		gen:      gen,
		policy:   policy,
		template: template,
		logger:   log,
	}
}
