package cues

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chech0x/youtube-cue-generator/internal/transcript"
)

// Cue is a timestamped title marking a structural section boundary within
// a transcript. Within a list, timestamps are strictly ascending.
type Cue struct {
	Seconds float64
	Title   string
}

// Line renders the cue in the "HH:MM:SS Title" artifact format.
func (c Cue) Line() string {
	return fmt.Sprintf("%s %s", transcript.FormatClock(c.Seconds), c.Title)
}

var cueLineRe = regexp.MustCompile(`^(\d+:\d{2}:\d{2})\s+(.+?)\s*$`)

// ParseLines reads cues back from a "HH:MM:SS Title" lines file. Lines
// that do not match are skipped; an error is returned only when no valid
// cue is found at all.
func ParseLines(text string) ([]Cue, error) {
	var list []Cue
	for _, line := range strings.Split(text, "\n") {
		groups := cueLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if groups == nil {
			continue
		}
		seconds, err := transcript.ParseClock(groups[1])
		if err != nil {
			continue
		}
		list = append(list, Cue{Seconds: seconds, Title: groups[2]})
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no valid cues found (expected \"HH:MM:SS Title\" lines)")
	}
	return list, nil
}
