package llm

import "fmt"

const classifyTemplate = `You are a document classifier. Answer with a single word, "yes" or "no".
Is the following document a resume or CV?

Document:
%s`

const analyzeTemplate = `You are an ATS (Applicant Tracking System) resume reviewer.
Evaluate the resume below and respond with JSON only, no markdown, matching exactly this shape:
{
  "overallScore": <number 0-100>,
  "keywordsScore": <number 0-100>,
  "experienceScore": <number 0-100>,
  "skillsScore": <number 0-100>,
  "educationScore": <number 0-100>,
  "formattingScore": <number 0-100>,
  "feedback": {
    "keywords": "<one to two sentences>",
    "experience": "<one to two sentences>",
    "skills": "<one to two sentences>",
    "education": "<one to two sentences>",
    "formatting": "<one to two sentences>"
  },
  "improvementSuggestions": ["<three to five actionable suggestions>"]
}

Score each category from 0 to 100 against common ATS criteria: relevant keywords,
depth and impact of experience, skill coverage, education presentation, and
machine-readable formatting.

Resume:
%s`

// ClassifyPrompt builds the binary resume-detection prompt.
func ClassifyPrompt(text string) string {
	return fmt.Sprintf(classifyTemplate, text)
}

// AnalyzePrompt builds the scoring-rubric prompt.
func AnalyzePrompt(text string) string {
	return fmt.Sprintf(analyzeTemplate, text)
}
