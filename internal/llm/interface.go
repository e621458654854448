package llm

import (
	"context"
	"encoding/json"
)

// CompletionReason indicates why the model stopped emitting output.
type CompletionReason string

const (
	// ReasonStop means the model finished on its own.
	ReasonStop CompletionReason = "stop"
	// ReasonLength means the output was cut off by the token budget.
	ReasonLength CompletionReason = "length"
	// ReasonOther covers every other provider-specific finish reason.
	ReasonOther CompletionReason = "other"
)

// Response is one raw model response with its completion reason.
type Response struct {
	Content string
	Reason  CompletionReason
}

// Schema names the JSON schema the model output must conform to.
// Definition is a plain JSON-schema document sent to the provider.
type Schema struct {
	Name       string
	Definition map[string]any
}

// PrettyJSON renders the schema definition indented, for embedding into
// prompt templates.
func (s Schema) PrettyJSON() string {
	data, err := json.MarshalIndent(s.Definition, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Generator produces schema-constrained structured output for a prompt.
// Implementations are synchronous; the HTTP timeout lives in the client.
type Generator interface {
	Generate(ctx context.Context, prompt string, schema Schema, maxOutputTokens int) (*Response, error)
}
