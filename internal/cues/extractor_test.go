package cues_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chech0x/youtube-cue-generator/internal/cues"
	"github.com/chech0x/youtube-cue-generator/internal/llm"
	"github.com/chech0x/youtube-cue-generator/internal/llm/mock"
	"github.com/chech0x/youtube-cue-generator/internal/logger"
)

const testTemplate = "Idiomas: <IDIOMAS>\nEsquema: <CUES_JSON_SCHEMA>\nTranscripción:\n<TRANSCRIPCION>"

func newExtractor(gen llm.Generator) cues.Extractor {
	policy := llm.RetryPolicy{MaxAttempts: 3, InitialTokens: 1000}
	return cues.New(gen, policy, testTemplate, logger.New("error"))
}

func TestExtractSortsAndDeduplicates(t *testing.T) {
	content := `{"cues": [
				{"timestamp": "00:45:00", "title": "Oración"},
				{"timestamp": "00:00:00", "title": "Bienvenida"},
				{"timestamp": 600, "title": "Mensaje"},
				{"timestamp": "00:10:00", "title": "Mensaje duplicado"}
			]}`
	gen := &mock.Generator{
		Responses: []llm.Response{{Content: content, Reason: llm.ReasonStop}},
	}

	extraction, err := newExtractor(gen).Extract(context.Background(), "transcript text", []string{"es", "en"})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	list := extraction.Cues

	want := []cues.Cue{
		{Seconds: 0, Title: "Bienvenida"},
		{Seconds: 600, Title: "Mensaje"},
		{Seconds: 2700, Title: "Oración"},
	}
	if len(list) != len(want) {
		t.Fatalf("got %d cues, want %d: %+v", len(list), len(want), list)
	}
	for i, c := range list {
		if c.Seconds != want[i].Seconds || c.Title != want[i].Title {
			t.Errorf("cue %d = %+v, want %+v", i, c, want[i])
		}
	}
	if extraction.Raw != content {
		t.Errorf("Raw = %q, raw model response must be preserved", extraction.Raw)
	}
}

func TestExtractPromptSubstitution(t *testing.T) {
	gen := &mock.Generator{
		Responses: []llm.Response{{
			Content: `{"cues": [{"timestamp": 0, "title": "Bienvenida"}]}`,
			Reason:  llm.ReasonStop,
		}},
	}

	if _, err := newExtractor(gen).Extract(context.Background(), "hola mundo", []string{"es", "en"}); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	prompt := gen.Calls[0].Prompt
	if !strings.Contains(prompt, "hola mundo") {
		t.Error("prompt missing transcript text")
	}
	if !strings.Contains(prompt, "es, en") {
		t.Error("prompt missing language hints")
	}
	if strings.Contains(prompt, "<TRANSCRIPCION>") || strings.Contains(prompt, "<IDIOMAS>") || strings.Contains(prompt, "<CUES_JSON_SCHEMA>") {
		t.Error("prompt has unsubstituted placeholders")
	}
}

func TestExtractSchemaFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty cue list", `{"cues": []}`},
		{"empty title", `{"cues": [{"timestamp": 0, "title": "  "}]}`},
		{"bad timestamp shape", `{"cues": [{"timestamp": true, "title": "Mensaje"}]}`},
		{"negative timestamp", `{"cues": [{"timestamp": -5, "title": "Mensaje"}]}`},
		{"unknown field", `{"cues": [{"timestamp": 0, "title": "Mensaje", "speaker": "x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mock.Generator{
				Responses: []llm.Response{{Content: tt.content, Reason: llm.ReasonStop}},
			}
			_, err := newExtractor(gen).Extract(context.Background(), "t", nil)

			var schemaErr *llm.SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Extract() error = %v, want SchemaError", err)
			}
		})
	}
}

func TestCueLine(t *testing.T) {
	c := cues.Cue{Seconds: 3723, Title: "Mensaje"}
	if got := c.Line(); got != "01:02:03 Mensaje" {
		t.Errorf("Line() = %q, want %q", got, "01:02:03 Mensaje")
	}
}

func TestParseLines(t *testing.T) {
	text := "00:00:00 Bienvenida\n\nnota suelta\n00:10:00 Mensaje\n"
	list, err := cues.ParseLines(text)
	if err != nil {
		t.Fatalf("ParseLines() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d cues, want 2", len(list))
	}
	if list[1].Seconds != 600 || list[1].Title != "Mensaje" {
		t.Errorf("cue 1 = %+v", list[1])
	}

	if _, err := cues.ParseLines("sin cues aquí"); err == nil {
		t.Error("ParseLines() expected error for text without cues")
	}
}
