// Package mock provides a scriptable Generator for tests.
package mock

import (
	"context"
	"fmt"

	"github.com/chech0x/youtube-cue-generator/internal/llm"
)

// Call records the arguments of one Generate invocation.
type Call struct {
	Prompt          string
	Schema          llm.Schema
	MaxOutputTokens int
}

// Generator replays a scripted sequence of responses. Once the script is
// exhausted the last response repeats. A non-nil Err is returned on every
// call instead.
type Generator struct {
	Responses []llm.Response
	Err       error
	Calls     []Call
}

func (g *Generator) Generate(_ context.Context, prompt string, schema llm.Schema, maxOutputTokens int) (*llm.Response, error) {
	g.Calls = append(g.Calls, Call{Prompt: prompt, Schema: schema, MaxOutputTokens: maxOutputTokens})
	if g.Err != nil {
		return nil, g.Err
	}
	if len(g.Responses) == 0 {
		return nil, fmt.Errorf("mock: no scripted responses")
	}
	idx := len(g.Calls) - 1
	if idx >= len(g.Responses) {
		idx = len(g.Responses) - 1
	}
	resp := g.Responses[idx]
	return &resp, nil
}
