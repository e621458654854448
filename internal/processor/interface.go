package processor

import "context"

// Processor runs the full cue + summary pipeline for one transcript file.
type Processor interface {
	Process(ctx context.Context, transcriptPath string) error
}
