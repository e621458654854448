package summary

import "context"

// Extraction is a parsed point list together with the raw model response
// it came from, preserved for the response artifact.
type Extraction struct {
	Points []Point
	Raw    string
}

// Extractor condenses a transcript range into point-form summary bullets.
type Extractor interface {
	Extract(ctx context.Context, rangeText string) (*Extraction, error)
}
