package youtube

import (
	"fmt"

	"github.com/chech0x/youtube-cue-generator/internal/transcript"
)

// Caption is one subtitle event as exposed by the caption source.
type Caption struct {
	Start    float64
	Duration float64
	Text     string
}

// NoCaptionsError reports that the video exposes no usable subtitle track
// in any of the requested languages.
type NoCaptionsError struct {
	VideoID   string
	Languages []string
}

func (e *NoCaptionsError) Error() string {
	return fmt.Sprintf("video %s has no captions for languages %v", e.VideoID, e.Languages)
}

// Segments converts captions into transcript segments (end = start +
// duration), skipping captions whose text is blank.
func Segments(captions []Caption) []transcript.Segment {
	segments := make([]transcript.Segment, 0, len(captions))
	for _, c := range captions {
		if c.Text == "" {
			continue
		}
		segments = append(segments, transcript.Segment{
			Start:  c.Start,
			End:    c.Start + c.Duration,
			HasEnd: true,
			Text:   c.Text,
		})
	}
	return segments
}
