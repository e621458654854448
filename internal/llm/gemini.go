package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini is a Generator backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini generator against the public Gemini API.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: GEMINI_API_KEY is not set")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini: model must not be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate implements Generator.
func (g *Gemini) Generate(ctx context.Context, prompt string, schema Schema, maxOutputTokens int) (*Response, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: schema.Definition,
		MaxOutputTokens:    int32(maxOutputTokens),
		Temperature:        genai.Ptr[float32](0.2),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: empty response")
	}

	candidate := result.Candidates[0]
	var text string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	reason := ReasonOther
	switch candidate.FinishReason {
	case genai.FinishReasonStop:
		reason = ReasonStop
	case genai.FinishReasonMaxTokens:
		reason = ReasonLength
	}

	return &Response{Content: text, Reason: reason}, nil
}
