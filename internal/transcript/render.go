package transcript

import (
	"fmt"
	"strings"
)

// Renderers serialize segments back into the supported text grammars.
// Parse(RenderCompact(segs)) and Parse(RenderInitial(segs)) reproduce the
// same start times and text.

// RenderPlain joins segment texts with newlines, dropping all timing.
func RenderPlain(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, seg.Text)
	}
	return strings.Join(lines, "\n")
}

// RenderBracketed renders "[HH:MM:SS.mmm --> HH:MM:SS.mmm] text" lines.
// Segments without an end time reuse the start time as the end.
func RenderBracketed(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, fmt.Sprintf("[%s --> %s] %s",
			FormatClockMillis(seg.Start), FormatClockMillis(endOf(seg)), seg.Text))
	}
	return strings.Join(lines, "\n")
}

// RenderCompact renders "start|end|text" lines in clock notation.
func RenderCompact(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, fmt.Sprintf("%s|%s|%s",
			FormatClockMillis(seg.Start), FormatClockMillis(endOf(seg)), seg.Text))
	}
	return strings.Join(lines, "\n")
}

// RenderInitial renders "HH:MM:SS|text" lines using only the start time.
// This is the format fed to cue extraction and summarization prompts.
func RenderInitial(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, fmt.Sprintf("%s|%s", FormatClock(seg.Start), seg.Text))
	}
	return strings.Join(lines, "\n")
}

func endOf(seg Segment) float64 {
	if seg.HasEnd {
		return seg.End
	}
	return seg.Start
}
