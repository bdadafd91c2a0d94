package analysis

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis and returns the assigned id.
func (r *PGRepo) Create(ctx context.Context, analysis CachedAnalysis) (int64, error) {
	const query = `
INSERT INTO resume_analyses (fingerprint, filename, file_type, result, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	payload, err := json.Marshal(analysis.Result)
	if err != nil {
		return 0, fmt.Errorf("marshal result: %w", err)
	}

	var id int64
	err = r.DB.QueryRowContext(ctx, query,
		analysis.Fingerprint,
		analysis.Filename,
		analysis.FileType,
		payload,
		analysis.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID returns an analysis by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (CachedAnalysis, error) {
	const query = `
SELECT id, fingerprint, filename, file_type, result, created_at
FROM resume_analyses
WHERE id = $1
LIMIT 1`
	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return CachedAnalysis{}, ErrNotFound
	}
	return analysis, err
}

// Recent returns up to limit analyses, newest first.
func (r *PGRepo) Recent(ctx context.Context, limit int) ([]CachedAnalysis, error) {
	const query = `
SELECT id, fingerprint, filename, file_type, result, created_at
FROM resume_analyses
ORDER BY created_at DESC, id DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CachedAnalysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (CachedAnalysis, error) {
	var a CachedAnalysis
	var payload []byte
	if err := row.Scan(&a.ID, &a.Fingerprint, &a.Filename, &a.FileType, &payload, &a.CreatedAt); err != nil {
		return CachedAnalysis{}, err
	}
	if err := json.Unmarshal(payload, &a.Result); err != nil {
		return CachedAnalysis{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return a, nil
}

var _ Repo = (*PGRepo)(nil)
