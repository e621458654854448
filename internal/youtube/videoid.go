package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

var videoIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/live/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID returns the 11-character video id from a raw id or any
// common YouTube URL form (watch, youtu.be, live, shorts, embed).
func ExtractVideoID(value string) (string, error) {
	value = strings.TrimSpace(value)
	if videoIDRe.MatchString(value) {
		return value, nil
	}

	for _, pattern := range urlPatterns {
		if groups := pattern.FindStringSubmatch(value); groups != nil {
			return groups[1], nil
		}
	}

	return "", fmt.Errorf("cannot extract a video id from %q: pass an 11-character id or a YouTube URL", value)
}
