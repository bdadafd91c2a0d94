package llm

import "context"

// Client abstracts the external text-generation service used by the
// classification gate and the resume analyzer. A nil Client means the
// service is not configured, which callers must treat differently from a
// failing call.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
