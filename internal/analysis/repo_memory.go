package analysis

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]CachedAnalysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[int64]CachedAnalysis)}
}

// Create stores the analysis and returns its assigned id.
func (r *MemoryRepo) Create(ctx context.Context, analysis CachedAnalysis) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	analysis.ID = r.nextID
	r.byID[analysis.ID] = analysis
	return analysis.ID, nil
}

// GetByID returns an analysis by its id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (CachedAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return CachedAnalysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[id]
	if !ok {
		return CachedAnalysis{}, ErrNotFound
	}
	return analysis, nil
}

// Recent returns up to limit analyses, newest first.
func (r *MemoryRepo) Recent(ctx context.Context, limit int) ([]CachedAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []CachedAnalysis{}, nil
	}

	r.mu.RLock()
	all := make([]CachedAnalysis, 0, len(r.byID))
	for _, a := range r.byID {
		all = append(all, a)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

var _ Repo = (*MemoryRepo)(nil)
