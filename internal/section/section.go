package section

import (
	"fmt"
	"strings"

	"github.com/chech0x/youtube-cue-generator/internal/cues"
	"github.com/chech0x/youtube-cue-generator/internal/transcript"
)

// Source records which fallback tier produced the range end.
type Source string

const (
	SourceEndLabel        Source = "end_label"
	SourceFallbackLabel   Source = "fallback_label"
	SourceEndOfTranscript Source = "end_of_transcript"
)

// Range is the resolved text range to summarize. End is exclusive and
// only meaningful when Source is not SourceEndOfTranscript.
type Range struct {
	Start  float64
	End    float64
	Source Source
}

func (r Range) String() string {
	if r.Source == SourceEndOfTranscript {
		return fmt.Sprintf("%s -> end of transcript", transcript.FormatClock(r.Start))
	}
	return fmt.Sprintf("%s -> %s", transcript.FormatClock(r.Start), transcript.FormatClock(r.End))
}

// BoundaryNotFoundError reports that no cue title matched the start label.
// It carries the searched titles so the labels or the cues can be fixed.
type BoundaryNotFoundError struct {
	Label  string
	Titles []string
}

func (e *BoundaryNotFoundError) Error() string {
	return fmt.Sprintf("no cue title matches start label %q (searched: %s)",
		e.Label, strings.Join(e.Titles, ", "))
}

// Labels configures boundary resolution. Matching is case- and
// accent-insensitive substring containment.
type Labels struct {
	Start    string
	End      string
	Fallback []string
}

// Default boundary labels.
const (
	DefaultStartLabel = "mensaje"
	DefaultEndLabel   = "ministracion"
)

// DefaultFallbackLabels lists known section titles that may follow the
// message, consulted in order when the end label is absent.
var DefaultFallbackLabels = []string{
	"ministracion",
	"oracion",
	"cumpleanos",
	"despedida",
	"cierre",
	"bendicion",
}

// NewLabels fills empty fields with the defaults.
func NewLabels(start, end string, fallback []string) Labels {
	if start == "" {
		start = DefaultStartLabel
	}
	if end == "" {
		end = DefaultEndLabel
	}
	if len(fallback) == 0 {
		fallback = DefaultFallbackLabels
	}
	return Labels{Start: start, End: end, Fallback: fallback}
}

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

func normalize(s string) string {
	return accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Resolve locates the range between the start-label cue and the first
// suitable end boundary. The end is chosen by a three-tier fallback: the
// end label, then the ordered fallback labels, then end of transcript.
// Only a missing start cue fails.
func Resolve(list []cues.Cue, labels Labels) (Range, error) {
	startKey := normalize(labels.Start)

	startIdx := -1
	for i, c := range list {
		if strings.Contains(normalize(c.Title), startKey) {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		titles := make([]string, 0, len(list))
		for _, c := range list {
			titles = append(titles, c.Title)
		}
		return Range{}, &BoundaryNotFoundError{Label: labels.Start, Titles: titles}
	}
	start := list[startIdx].Seconds

	endKey := normalize(labels.End)
	for _, c := range list[startIdx+1:] {
		if strings.Contains(normalize(c.Title), endKey) && c.Seconds > start {
			return Range{Start: start, End: c.Seconds, Source: SourceEndLabel}, nil
		}
	}

	for _, c := range list[startIdx+1:] {
		title := normalize(c.Title)
		for _, label := range labels.Fallback {
			if strings.Contains(title, normalize(label)) && c.Seconds > start {
				return Range{Start: start, End: c.Seconds, Source: SourceFallbackLabel}, nil
			}
		}
	}

	return Range{Start: start, Source: SourceEndOfTranscript}, nil
}

// Extract filters segments whose start time falls inside r and renders
// them as newline-separated "HH:MM:SS|text" lines for the summarization
// prompt. The full text is passed on, not just the boundary timestamps.
func Extract(segments []transcript.Segment, r Range) (string, error) {
	var lines []string
	for _, seg := range segments {
		if seg.Start < r.Start {
			continue
		}
		if r.Source != SourceEndOfTranscript && seg.Start >= r.End {
			continue
		}
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s|%s", transcript.FormatClock(seg.Start), text))
	}

	if len(lines) == 0 {
		return "", fmt.Errorf("no transcript segments inside range %s", r)
	}
	return strings.Join(lines, "\n"), nil
}
