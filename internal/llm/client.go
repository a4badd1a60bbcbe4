package llm

import (
	"context"
)

// Client turns a single prompt into generated text.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
