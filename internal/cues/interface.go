package cues

import "context"

// Extraction is a normalized cue list together with the raw model
// response it came from, preserved for the response artifact.
type Extraction struct {
	Cues []Cue
	Raw  string
}

// Extractor asks the model for the structural sections of a transcript
// and returns them as a normalized cue list.
type Extractor interface {
	Extract(ctx context.Context, transcriptText string, languageHints []string) (*Extraction, error)
}
