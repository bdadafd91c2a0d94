package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resume-checker/internal/llm"
)

// Analyzer turns extracted resume text into a Result via the external
// scoring service, with a fixed fallback when no credential is configured.
type Analyzer struct {
	LLM     llm.Client
	Timeout time.Duration
}

// Analyze scores the resume text. Callers receive either a fully populated
// Result or a typed error: ErrEmptyText for invalid input, ErrUnavailable
// for transport failures, ErrMalformedResponse for unparseable output.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}

	if a.LLM == nil {
		return NotConfiguredResult(), nil
	}

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := a.LLM.GenerateText(callCtx, llm.AnalyzePrompt(text))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var result Result
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &result); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	normalize(&result)
	return result, nil
}

// stripCodeFence removes an optional markdown code fence wrapping the
// model's JSON output.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line, e.g. "json"
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// normalize fills absent or empty feedback fields and suggestions with
// fixed defaults. Scores are passed through unmodified.
func normalize(r *Result) {
	for _, field := range []*string{
		&r.Feedback.Keywords,
		&r.Feedback.Experience,
		&r.Feedback.Skills,
		&r.Feedback.Education,
		&r.Feedback.Formatting,
	} {
		if strings.TrimSpace(*field) == "" {
			*field = defaultFeedbackText
		}
	}

	suggestions := r.ImprovementSuggestions[:0]
	for _, s := range r.ImprovementSuggestions {
		if strings.TrimSpace(s) != "" {
			suggestions = append(suggestions, s)
		}
	}
	if len(suggestions) == 0 {
		suggestions = []string{defaultSuggestionText}
	}
	r.ImprovementSuggestions = suggestions
}
