package summary_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chech0x/youtube-cue-generator/internal/llm"
	"github.com/chech0x/youtube-cue-generator/internal/llm/mock"
	"github.com/chech0x/youtube-cue-generator/internal/logger"
	"github.com/chech0x/youtube-cue-generator/internal/summary"
)

const testTemplate = "Esquema: <SUMMARY_JSON_SCHEMA>\nTexto:\n<TRANSCRIPCION_MENSAJE>"

func newExtractor(gen llm.Generator) summary.Extractor {
	policy := llm.RetryPolicy{MaxAttempts: 3, InitialTokens: 1000}
	return summary.New(gen, policy, testTemplate, logger.New("error"))
}

func TestExtract(t *testing.T) {
	gen := &mock.Generator{
		Responses: []llm.Response{{
			Content: `{"summary_points": [
				"🙏 Dios es fiel (Juan 3:16)",
				"🔥 La fe mueve montañas",
				"La palabra permanece (Isaías 40:8)"
			]}`,
			Reason: llm.ReasonStop,
		}},
	}

	// A list shorter than the count the prompt asks for is still accepted.
	extraction, err := newExtractor(gen).Extract(context.Background(), "00:10:50|abrimos la palabra")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	points := extraction.Points
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if extraction.Raw == "" || !strings.Contains(extraction.Raw, "summary_points") {
		t.Errorf("Raw = %q, raw model response must be preserved", extraction.Raw)
	}

	first := summary.Point{Emoji: "🙏", Text: "Dios es fiel", Reference: "Juan 3:16"}
	if points[0] != first {
		t.Errorf("point 0 = %+v, want %+v", points[0], first)
	}
	if points[2].Emoji != "" || points[2].Reference != "Isaías 40:8" {
		t.Errorf("point 2 = %+v", points[2])
	}

	prompt := gen.Calls[0].Prompt
	if !strings.Contains(prompt, "abrimos la palabra") {
		t.Error("prompt missing range text")
	}
	if strings.Contains(prompt, "<TRANSCRIPCION_MENSAJE>") || strings.Contains(prompt, "<SUMMARY_JSON_SCHEMA>") {
		t.Error("prompt has unsubstituted placeholders")
	}
}

func TestExtractSchemaFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty point list", `{"summary_points": []}`},
		{"blank points only", `{"summary_points": ["  ", ""]}`},
		{"point without text", `{"summary_points": ["🙏"]}`},
		{"wrong shape", `{"points": ["🙏 Dios es fiel"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mock.Generator{
				Responses: []llm.Response{{Content: tt.content, Reason: llm.ReasonStop}},
			}
			_, err := newExtractor(gen).Extract(context.Background(), "texto")

			var schemaErr *llm.SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Extract() error = %v, want SchemaError", err)
			}
		})
	}
}
