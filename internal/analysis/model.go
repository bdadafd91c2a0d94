package analysis

import "time"

// Feedback holds one short natural-language comment per scored category.
type Feedback struct {
	Keywords   string `json:"keywords"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
	Education  string `json:"education"`
	Formatting string `json:"formatting"`
}

// Result is the canonical ATS assessment shape. Every field is always
// present in values returned to callers; upstream gaps are filled by
// normalization before a Result leaves the analyzer.
type Result struct {
	OverallScore           int      `json:"overallScore"`
	KeywordsScore          int      `json:"keywordsScore"`
	ExperienceScore        int      `json:"experienceScore"`
	SkillsScore            int      `json:"skillsScore"`
	EducationScore         int      `json:"educationScore"`
	FormattingScore        int      `json:"formattingScore"`
	Feedback               Feedback `json:"feedback"`
	ImprovementSuggestions []string `json:"improvementSuggestions"`
}

// CachedAnalysis is a Result plus provenance metadata, keyed by the
// fingerprint of the extracted text. Immutable once stored.
type CachedAnalysis struct {
	ID          int64     `json:"id"`
	Filename    string    `json:"filename"`
	FileType    string    `json:"fileType"`
	CreatedAt   time.Time `json:"createdAt"`
	Fingerprint string    `json:"-"`
	Result
}
