package processor

import (
	"github.com/chech0x/youtube-cue-generator/internal/config"
	"github.com/chech0x/youtube-cue-generator/internal/cues"
	"github.com/chech0x/youtube-cue-generator/internal/logger"
	"github.com/chech0x/youtube-cue-generator/internal/summary"
)

type implProcessor struct {
	cfg        *config.Config
	cueExt     cues.Extractor
	summaryExt summary.Extractor
	logger     logger.Logger
}

// New creates a Processor wiring the two extractors to the configured
// paths and section labels.
func New(cfg *config.Config, cueExt cues.Extractor, summaryExt summary.Extractor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		cueExt:     cueExt,
		summaryExt: summaryExt,
		logger:     log,
	}
}
