package analysis

// Fixed fallback payloads shared by every call site that needs to
// synthesize a result without a successful model response.

const (
	defaultFeedbackText   = "No feedback provided."
	defaultSuggestionText = "No suggestions provided."

	notConfiguredFeedback = "AI analysis is not configured, so a neutral baseline score was assigned."
	technicalFeedback     = "A temporary technical issue prevented a detailed review of this category."
	notResumeFeedback     = "This document does not appear to be a resume."
)

// NotConfiguredResult is the stable result returned when no external-service
// credential is configured. It is a documented default, not a placeholder.
func NotConfiguredResult() Result {
	return Result{
		OverallScore:    75,
		KeywordsScore:   75,
		ExperienceScore: 75,
		SkillsScore:     75,
		EducationScore:  75,
		FormattingScore: 75,
		Feedback: Feedback{
			Keywords:   notConfiguredFeedback,
			Experience: notConfiguredFeedback,
			Skills:     notConfiguredFeedback,
			Education:  notConfiguredFeedback,
			Formatting: notConfiguredFeedback,
		},
		ImprovementSuggestions: []string{
			"Set the GEMINI_API_KEY environment variable to enable AI-powered scoring.",
			"Pick a Gemini model via GEMINI_MODEL if the default does not suit your quota.",
			"Re-upload the resume once the analysis service is configured.",
		},
	}
}

// TechnicalFallbackResult is substituted when the analysis service fails or
// returns malformed output after a credential is present.
func TechnicalFallbackResult() Result {
	return Result{
		OverallScore:    70,
		KeywordsScore:   70,
		ExperienceScore: 70,
		SkillsScore:     70,
		EducationScore:  70,
		FormattingScore: 70,
		Feedback: Feedback{
			Keywords:   technicalFeedback,
			Experience: technicalFeedback,
			Skills:     technicalFeedback,
			Education:  technicalFeedback,
			Formatting: technicalFeedback,
		},
		ImprovementSuggestions: []string{
			"The analysis service was temporarily unavailable. Please try again in a few minutes.",
			"If the problem persists, re-upload the resume to trigger a fresh analysis.",
		},
	}
}

// NotResumeResult is returned when the classifier explicitly answers that
// the document is not a resume.
func NotResumeResult() Result {
	return Result{
		Feedback: Feedback{
			Keywords:   notResumeFeedback,
			Experience: notResumeFeedback,
			Skills:     notResumeFeedback,
			Education:  notResumeFeedback,
			Formatting: notResumeFeedback,
		},
		ImprovementSuggestions: []string{
			"Please upload a valid resume or CV document.",
		},
	}
}
