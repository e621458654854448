package cues

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/chech0x/youtube-cue-generator/internal/llm"
	"github.com/chech0x/youtube-cue-generator/internal/transcript"
)

// Prompt template placeholders. The transcript placeholder is required;
// the others are substituted only when present in the template.
const (
	TranscriptPlaceholder = "<TRANSCRIPCION>"
	LanguagesPlaceholder  = "<IDIOMAS>"
	SchemaPlaceholder     = "<CUES_JSON_SCHEMA>"
)

// Schema is the versioned response schema for cue extraction.
func Schema() llm.Schema {
	return llm.Schema{
		Name: "cues_response",
		Definition: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"cues": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":                 "object",
						"additionalProperties": false,
						"properties": map[string]any{
							"timestamp": map[string]any{
								"type": []string{"string", "number"},
							},
							"title": map[string]any{
								"type": "string",
							},
						},
						"required": []string{"timestamp", "title"},
					},
				},
			},
			"required": []string{"cues"},
		},
	}
}

// BuildPrompt substitutes the transcript (and optional language hints and
// schema) into the template. Template wording is never hard-coded here.
func BuildPrompt(template, transcriptText string, languageHints []string) string {
	prompt := strings.ReplaceAll(template, TranscriptPlaceholder, transcriptText)
	prompt = strings.ReplaceAll(prompt, SchemaPlaceholder, Schema().PrettyJSON())
	if len(languageHints) > 0 {
		prompt = strings.ReplaceAll(prompt, LanguagesPlaceholder, strings.Join(languageHints, ", "))
	}
	return prompt
}

type cuesPayload struct {
	Cues []cueEntry `json:"cues"`
}

type cueEntry struct {
	Timestamp json.RawMessage `json:"timestamp"`
	Title     string          `json:"title"`
}

func (e *implExtractor) Extract(ctx context.Context, transcriptText string, languageHints []string) (*Extraction, error) {
	prompt := BuildPrompt(e.template, transcriptText, languageHints)

	var payload cuesPayload
	result, err := e.policy.Invoke(ctx, e.gen, prompt, Schema(), &payload)
	if err != nil {
		return nil, fmt.Errorf("extract cues: %w", err)
	}
	e.logger.Debug(ctx, "Cues response: attempts=%d tokens=%d reason=%s",
		result.Attempts, result.Tokens, result.Reason)

	list, err := normalize(payload.Cues)
	if err != nil {
		return nil, fmt.Errorf("extract cues: %w", llm.NewSchemaError(result.Raw, err))
	}
	return &Extraction{Cues: list, Raw: result.Raw}, nil
}

// normalize converts entry timestamps to seconds, sorts ascending and
// drops entries sharing a timestamp with an earlier one. Title wording is
// passed through untouched.
func normalize(entries []cueEntry) ([]Cue, error) {
	list := make([]Cue, 0, len(entries))
	for _, entry := range entries {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			return nil, fmt.Errorf("cue with empty title")
		}
		seconds, err := timestampSeconds(entry.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("cue %q: %w", title, err)
		}
		list = append(list, Cue{Seconds: seconds, Title: title})
	}

	sort.SliceStable(list, func(a, b int) bool {
		return list[a].Seconds < list[b].Seconds
	})

	deduped := list[:0]
	for _, c := range list {
		if len(deduped) > 0 && deduped[len(deduped)-1].Seconds == c.Seconds {
			continue
		}
		deduped = append(deduped, c)
	}

	if len(deduped) == 0 {
		return nil, fmt.Errorf("empty cue list")
	}
	return deduped, nil
}

// timestampSeconds accepts either a clock string or a bare number of
// seconds, the two shapes the schema allows.
func timestampSeconds(raw json.RawMessage) (float64, error) {
	var clock string
	if err := json.Unmarshal(raw, &clock); err == nil {
		return transcript.ParseClock(strings.TrimSpace(clock))
	}

	var seconds float64
	if err := json.Unmarshal(raw, &seconds); err == nil {
		if seconds < 0 {
			return 0, fmt.Errorf("negative timestamp %v", seconds)
		}
		return seconds, nil
	}

	return 0, fmt.Errorf("timestamp %s is neither a clock string nor a number", raw)
}
