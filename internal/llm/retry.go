package llm

import (
	"context"
	"fmt"
	"reflect"
)

// SchemaError reports that model output never conformed to the requested
// schema after all attempts. Raw carries the last response for diagnosis.
type SchemaError struct {
	Raw string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("model output did not conform to schema: %v (raw: %s)", e.Err, e.Raw)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// NewSchemaError wraps a semantic validation failure of an already-parsed
// payload, keeping the raw response attached.
func NewSchemaError(raw string, err error) *SchemaError {
	return &SchemaError{Raw: raw, Err: err}
}

// RetryPolicy re-invokes a Generator when a response was truncated by the
// output token limit, with a strictly increased budget each attempt. It is
// shared by cue extraction and summarization, which differ only in the
// prompt and schema they supply.
type RetryPolicy struct {
	// MaxAttempts bounds the total number of calls. Zero means one call.
	MaxAttempts int
	// InitialTokens is the output budget of the first call.
	InitialTokens int
	// Grow computes the next budget from the current one. Defaults to
	// doubling. A non-increasing Grow is bumped by one to keep the budget
	// strictly ascending.
	Grow func(tokens int) int
}

// Result describes the successful attempt, for observability.
type Result struct {
	Raw      string
	Reason   CompletionReason
	Attempts int
	Tokens   int
}

// Invoke calls gen until its response decodes into out, retrying only when
// the response was length-truncated. A decode failure on a non-truncated
// response, or on the final attempt, yields a SchemaError with the last
// raw response. Each attempt decodes into a fresh value; out is written
// only on success, so a malformed earlier payload never leaks fields into
// the returned one. out must be a non-nil pointer.
func (p RetryPolicy) Invoke(ctx context.Context, gen Generator, prompt string, schema Schema, out any) (*Result, error) {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	tokens := p.InitialTokens
	if tokens <= 0 {
		tokens = 6000
	}
	grow := p.Grow
	if grow == nil {
		grow = func(n int) int { return n * 2 }
	}

	outPtr := reflect.ValueOf(out)

	for attempt := 1; ; attempt++ {
		resp, err := gen.Generate(ctx, prompt, schema, tokens)
		if err != nil {
			return nil, fmt.Errorf("generate (attempt %d): %w", attempt, err)
		}

		fresh := reflect.New(outPtr.Type().Elem())
		if decodeErr := decodeStrict(resp.Content, fresh.Interface()); decodeErr == nil {
			outPtr.Elem().Set(fresh.Elem())
			return &Result{
				Raw:      resp.Content,
				Reason:   resp.Reason,
				Attempts: attempt,
				Tokens:   tokens,
			}, nil
		} else if resp.Reason != ReasonLength || attempt >= attempts {
			return nil, &SchemaError{Raw: resp.Content, Err: decodeErr}
		}

		next := grow(tokens)
		if next <= tokens {
			next = tokens + 1
		}
		tokens = next
	}
}
