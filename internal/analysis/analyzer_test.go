package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeLLM struct {
	resp  string
	err   error
	calls int
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.resp, nil
}

const validAnalysisJSON = `{
  "overallScore": 82,
  "keywordsScore": 78,
  "experienceScore": 85,
  "skillsScore": 80,
  "educationScore": 88,
  "formattingScore": 79,
  "feedback": {
    "keywords": "Good keyword coverage.",
    "experience": "Strong experience section.",
    "skills": "Relevant skills listed.",
    "education": "Education is well presented.",
    "formatting": "Clean machine-readable layout."
  },
  "improvementSuggestions": ["Add more metrics.", "Tailor keywords to the role."]
}`

func TestAnalyzeRejectsWhitespaceText(t *testing.T) {
	client := &fakeLLM{resp: validAnalysisJSON}
	a := &Analyzer{LLM: client}

	_, err := a.Analyze(context.Background(), "   \n\t  ")
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("expected no external call for empty text, got %d", client.calls)
	}
}

func TestAnalyzeNotConfiguredFallbackIsDeterministic(t *testing.T) {
	a := &Analyzer{LLM: nil}

	first, err := a.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	second, err := a.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	for _, score := range []int{first.OverallScore, first.KeywordsScore, first.ExperienceScore, first.SkillsScore, first.EducationScore, first.FormattingScore} {
		if score != 75 {
			t.Fatalf("expected all not-configured scores to be 75, got %d", score)
		}
	}
	if first.Feedback != second.Feedback || first.OverallScore != second.OverallScore {
		t.Fatal("expected identical fallback results on every call")
	}
	if len(first.ImprovementSuggestions) != 3 {
		t.Fatalf("expected 3 configuration suggestions, got %d", len(first.ImprovementSuggestions))
	}
}

func TestAnalyzeParsesSuccessResponse(t *testing.T) {
	a := &Analyzer{LLM: &fakeLLM{resp: validAnalysisJSON}}

	got, err := a.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.OverallScore != 82 {
		t.Fatalf("expected overallScore 82, got %d", got.OverallScore)
	}
	if got.Feedback.Education != "Education is well presented." {
		t.Fatalf("unexpected education feedback: %q", got.Feedback.Education)
	}
	if len(got.ImprovementSuggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got.ImprovementSuggestions))
	}
}

func TestAnalyzeStripsCodeFence(t *testing.T) {
	fenced := "```json\n" + validAnalysisJSON + "\n```"
	a := &Analyzer{LLM: &fakeLLM{resp: fenced}}

	got, err := a.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("analyze fenced response: %v", err)
	}
	if got.OverallScore != 82 {
		t.Fatalf("expected overallScore 82, got %d", got.OverallScore)
	}
}

func TestAnalyzeNormalizesMissingFields(t *testing.T) {
	partial := `{
  "overallScore": 61,
  "keywordsScore": 55,
  "experienceScore": 64,
  "skillsScore": 58,
  "educationScore": 0,
  "formattingScore": 60,
  "feedback": {
    "keywords": "Thin keyword coverage.",
    "experience": "Experience lacks metrics.",
    "skills": "Skills list is generic.",
    "formatting": "Layout parses fine."
  },
  "improvementSuggestions": []
}`
	a := &Analyzer{LLM: &fakeLLM{resp: partial}}

	got, err := a.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.Feedback.Education != "No feedback provided." {
		t.Fatalf("expected default education feedback, got %q", got.Feedback.Education)
	}
	if got.Feedback.Keywords != "Thin keyword coverage." {
		t.Fatalf("expected keywords feedback preserved, got %q", got.Feedback.Keywords)
	}
	if len(got.ImprovementSuggestions) != 1 || got.ImprovementSuggestions[0] != "No suggestions provided." {
		t.Fatalf("expected default suggestions, got %v", got.ImprovementSuggestions)
	}
	if got.OverallScore != 61 {
		t.Fatalf("expected score passed through, got %d", got.OverallScore)
	}
}

func TestAnalyzeScoresPassedThroughUnvalidated(t *testing.T) {
	outOfRange := strings.Replace(validAnalysisJSON, `"overallScore": 82`, `"overallScore": 130`, 1)
	a := &Analyzer{LLM: &fakeLLM{resp: outOfRange}}

	got, err := a.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.OverallScore != 130 {
		t.Fatalf("expected out-of-range score passed through, got %d", got.OverallScore)
	}
}

func TestAnalyzeTransportFailure(t *testing.T) {
	a := &Analyzer{LLM: &fakeLLM{err: errors.New("connection refused")}}

	_, err := a.Analyze(context.Background(), "resume text")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAnalyzeMalformedResponse(t *testing.T) {
	a := &Analyzer{LLM: &fakeLLM{resp: "I would rate this resume quite highly overall."}}

	_, err := a.Analyze(context.Background(), "resume text")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestStripCodeFenceVariants(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"padded", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripCodeFence(tc.in); got != tc.want {
				t.Fatalf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
