package transcript

import (
	"errors"
	"testing"
)

func TestParseGrammars(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantStart float64
		wantEnd   float64
		wantHas   bool
		wantText  string
	}{
		{
			name:      "bracketed range",
			line:      "[00:00:01.000 --> 00:00:04.500] hola a todos",
			wantStart: 1, wantEnd: 4.5, wantHas: true, wantText: "hola a todos",
		},
		{
			name:      "bracketed without millis",
			line:      "[00:10:00 --> 00:10:05] bienvenidos",
			wantStart: 600, wantEnd: 605, wantHas: true, wantText: "bienvenidos",
		},
		{
			name:      "compact range",
			line:      "00:00:01.000|00:00:04.500|hola a todos",
			wantStart: 1, wantEnd: 4.5, wantHas: true, wantText: "hola a todos",
		},
		{
			name:      "initial only",
			line:      "00:10:00|bienvenidos",
			wantStart: 600, wantHas: false, wantText: "bienvenidos",
		},
		{
			name:      "initial only with pipe in text",
			line:      "00:10:00|uno | dos",
			wantStart: 600, wantHas: false, wantText: "uno | dos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(segments) != 1 {
				t.Fatalf("Parse() returned %d segments, want 1", len(segments))
			}
			seg := segments[0]
			if seg.Start != tt.wantStart {
				t.Errorf("Start = %v, want %v", seg.Start, tt.wantStart)
			}
			if seg.HasEnd != tt.wantHas {
				t.Errorf("HasEnd = %v, want %v", seg.HasEnd, tt.wantHas)
			}
			if tt.wantHas && seg.End != tt.wantEnd {
				t.Errorf("End = %v, want %v", seg.End, tt.wantEnd)
			}
			if seg.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", seg.Text, tt.wantText)
			}
		})
	}
}

func TestParseFormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"minute out of range", "12:61:00|hello"},
		{"second out of range", "00:00:60|hello"},
		{"no grammar", "hello world"},
		{"bad bracketed end", "[00:00:01 --> 00:61:00] hola"},
		{"empty text", "00:10:00|   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("Parse(%q) error = %v, want FormatError", tt.input, err)
			}
			if formatErr.LineNum != 1 {
				t.Errorf("LineNum = %d, want 1", formatErr.LineNum)
			}
		})
	}
}

func TestParseAbortsOnFirstBadLine(t *testing.T) {
	input := "00:00:01|ok\n00:00:02|ok too\nnot a transcript line\n00:00:03|never reached"

	segments, err := Parse(input)
	if segments != nil {
		t.Error("Parse() returned partial output, want nil")
	}

	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Parse() error = %v, want FormatError", err)
	}
	if formatErr.LineNum != 3 {
		t.Errorf("LineNum = %d, want 3", formatErr.LineNum)
	}
	if formatErr.Line != "not a transcript line" {
		t.Errorf("Line = %q", formatErr.Line)
	}
}

func TestParseSkipsBlankLinesAndOrders(t *testing.T) {
	input := "\n00:00:10|second\n\n00:00:05|first\n"

	segments, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].Text != "first" || segments[1].Text != "second" {
		t.Errorf("segments not ordered by start time: %+v", segments)
	}
}

// Re-parsing the parser's own compact serialization must reproduce the
// same segments.
func TestParseRenderCompactIdempotent(t *testing.T) {
	input := "00:00:01.000|00:00:04.500|hola a todos\n00:00:04.500|00:00:07.250|como estan"

	first, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	second, err := Parse(RenderCompact(first))
	if err != nil {
		t.Fatalf("re-Parse() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("segment count changed: %d != %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("segment %d changed: %+v != %+v", i, first[i], second[i])
		}
	}
}

func TestRenderInitial(t *testing.T) {
	segments := []Segment{
		{Start: 5, Text: "first"},
		{Start: 605, Text: "second"},
	}
	want := "00:00:05|first\n00:10:05|second"
	if got := RenderInitial(segments); got != want {
		t.Errorf("RenderInitial() = %q, want %q", got, want)
	}
}
