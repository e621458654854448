package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouter is a Generator backed by the OpenRouter chat completions API,
// which speaks the OpenAI wire protocol.
type OpenRouter struct {
	client oai.Client
	model  string
}

// NewOpenRouter builds an OpenRouter generator. baseURL may be empty to
// use the public endpoint.
func NewOpenRouter(apiKey, model, baseURL string) (*OpenRouter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openrouter: OPENROUTER_API_KEY is not set")
	}
	if model == "" {
		return nil, fmt.Errorf("openrouter: model must not be empty")
	}
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	client := oai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(&http.Client{Timeout: 120 * time.Second}),
	)
	return &OpenRouter{client: client, model: model}, nil
}

// Generate implements Generator.
func (g *OpenRouter) Generate(ctx context.Context, prompt string, schema Schema, maxOutputTokens int) (*Response, error) {
	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.UserMessage(prompt),
		},
		Temperature: param.NewOpt(0.2),
		MaxTokens:   param.NewOpt(int64(maxOutputTokens)),
		ResponseFormat: oai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schema.Name,
					Strict: param.NewOpt(true),
					Schema: schema.Definition,
				},
			},
		},
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openrouter: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openrouter: empty choices in response")
	}

	choice := resp.Choices[0]
	return &Response{
		Content: choice.Message.Content,
		Reason:  reasonFromFinish(choice.FinishReason),
	}, nil
}

func reasonFromFinish(finish string) CompletionReason {
	switch finish {
	case "stop":
		return ReasonStop
	case "length":
		return ReasonLength
	default:
		return ReasonOther
	}
}
