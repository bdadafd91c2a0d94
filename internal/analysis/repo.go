package analysis

import "context"

// Repo defines persistence operations for completed analyses. The repo
// assigns the numeric provenance id on Create.
type Repo interface {
	Create(ctx context.Context, analysis CachedAnalysis) (int64, error)
	GetByID(ctx context.Context, id int64) (CachedAnalysis, error)
	Recent(ctx context.Context, limit int) ([]CachedAnalysis, error)
}
