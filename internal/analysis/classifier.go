package analysis

import (
	"context"
	"strings"
	"time"

	"resume-checker/internal/llm"
	"resume-checker/internal/shared/metrics"
	"resume-checker/internal/shared/telemetry"
)

// Classifier decides whether extracted text is a resume.
type Classifier interface {
	IsResume(ctx context.Context, text string) bool
}

// LLMClassifier asks the external model a yes/no question and fails open:
// a missing credential or a failed call never blocks the pipeline.
type LLMClassifier struct {
	LLM     llm.Client
	Timeout time.Duration
}

// IsResume returns true unless the model call succeeds and the answer does
// not begin with "yes".
func (c *LLMClassifier) IsResume(ctx context.Context, text string) bool {
	if c.LLM == nil {
		return true
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	answer, err := c.LLM.GenerateText(callCtx, llm.ClassifyPrompt(text))
	if err != nil {
		metrics.IncClassifierErrors()
		telemetry.Warn("classifier.fail_open", map[string]any{
			"err": err.Error(),
		})
		return true
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "yes")
}

var _ Classifier = (*LLMClassifier)(nil)
