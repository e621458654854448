// Package report writes the pipeline's artifacts: plain-text line files
// and styled docx renditions of cue sheets and summaries.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chech0x/youtube-cue-generator/internal/cues"
	"github.com/chech0x/youtube-cue-generator/internal/summary"
)

// CueLines renders cues as "HH:MM:SS Title" lines.
func CueLines(list []cues.Cue) string {
	lines := make([]string, 0, len(list))
	for _, c := range list {
		lines = append(lines, c.Line())
	}
	return strings.Join(lines, "\n")
}

// PointLines renders summary points one per line.
func PointLines(points []summary.Point) string {
	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, p.Line())
	}
	return strings.Join(lines, "\n")
}

// WriteLines writes content to path with a trailing newline, creating
// parent directories as needed.
func WriteLines(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
