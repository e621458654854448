package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/chech0x/youtube-cue-generator/internal/llm"
)

// Prompt template placeholders.
const (
	RangePlaceholder  = "<TRANSCRIPCION_MENSAJE>"
	SchemaPlaceholder = "<SUMMARY_JSON_SCHEMA>"
)

// Schema is the versioned response schema for message summarization.
func Schema() llm.Schema {
	return llm.Schema{
		Name: "message_summary_response",
		Definition: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"summary_points": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []string{"summary_points"},
		},
	}
}

// BuildPrompt substitutes the range text and the schema into the template.
func BuildPrompt(template, rangeText string) string {
	prompt := strings.ReplaceAll(template, RangePlaceholder, rangeText)
	return strings.ReplaceAll(prompt, SchemaPlaceholder, Schema().PrettyJSON())
}

type summaryPayload struct {
	SummaryPoints []string `json:"summary_points"`
}

func (e *implExtractor) Extract(ctx context.Context, rangeText string) (*Extraction, error) {
	prompt := BuildPrompt(e.template, rangeText)

	var payload summaryPayload
	result, err := e.policy.Invoke(ctx, e.gen, prompt, Schema(), &payload)
	if err != nil {
		return nil, fmt.Errorf("extract summary: %w", err)
	}
	e.logger.Debug(ctx, "Summary response: attempts=%d tokens=%d reason=%s",
		result.Attempts, result.Tokens, result.Reason)

	points, err := parsePoints(payload.SummaryPoints)
	if err != nil {
		return nil, fmt.Errorf("extract summary: %w", llm.NewSchemaError(result.Raw, err))
	}
	return &Extraction{Points: points, Raw: result.Raw}, nil
}

// parsePoints parses each non-blank raw point. The prompt asks the model
// for a minimum point count, but that request is advisory: shorter lists
// are passed through.
func parsePoints(raw []string) ([]Point, error) {
	points := make([]Point, 0, len(raw))
	for _, item := range raw {
		if strings.TrimSpace(item) == "" {
			continue
		}
		point, err := ParsePoint(item)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("empty summary point list")
	}
	return points, nil
}
