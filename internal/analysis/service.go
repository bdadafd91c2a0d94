package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-checker/internal/extract"
	"resume-checker/internal/shared/metrics"
	"resume-checker/internal/shared/storage/object"
	"resume-checker/internal/shared/telemetry"
	"resume-checker/internal/shared/util"
)

// Service orchestrates the analysis pipeline: extraction, fingerprint
// lookup, classification, analysis, and persistence. Dependencies are
// injected at construction so tests can substitute each collaborator.
type Service struct {
	Cache      Cache
	Repo       Repo
	Classifier Classifier
	Analyzer   *Analyzer
	Archive    object.Store
}

var acceptedMimeTypes = map[string]struct{}{
	extract.MimePDF:  {},
	extract.MimeDOCX: {},
	"application/zip": {}, // browsers occasionally report DOCX as zip
}

// Process runs the full pipeline for one uploaded document and returns the
// stored analysis. Every failure mode maps either to a typed client error
// (ErrUnsupportedType, ErrExtraction, ErrEmptyText) or to a cached fallback
// result; external-service unreliability is never surfaced to the caller.
func (s *Service) Process(ctx context.Context, data []byte, mimeType, filename string) (CachedAnalysis, error) {
	metrics.IncAnalyzeRequests()
	start := time.Now()

	normalizedType := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if _, ok := acceptedMimeTypes[normalizedType]; !ok {
		return CachedAnalysis{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}

	text, err := extract.Text(ctx, data, mimeType, filename)
	if err != nil {
		return CachedAnalysis{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	if strings.TrimSpace(text) == "" {
		return CachedAnalysis{}, ErrEmptyText
	}

	fingerprint := util.Fingerprint(text)
	if cached, ok := s.Cache.Get(fingerprint); ok {
		metrics.IncCacheHits()
		telemetry.Info("analysis.cache_hit", map[string]any{
			"fingerprint": fingerprint,
			"analysis_id": cached.ID,
		})
		return cached, nil
	}

	s.archive(ctx, filename, data)

	var result Result
	switch {
	case !s.Classifier.IsResume(ctx, text):
		metrics.IncNotResume()
		result = NotResumeResult()
	default:
		result, err = s.Analyzer.Analyze(ctx, text)
		if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrMalformedResponse) {
			metrics.IncFallbackResults()
			telemetry.Warn("analysis.fallback", map[string]any{
				"fingerprint": fingerprint,
				"err":         err.Error(),
			})
			result = TechnicalFallbackResult()
		} else if err != nil {
			return CachedAnalysis{}, err
		}
	}

	analysis := CachedAnalysis{
		Filename:    filename,
		FileType:    normalizedType,
		CreatedAt:   time.Now().UTC(),
		Fingerprint: fingerprint,
		Result:      result,
	}

	id, err := s.Repo.Create(ctx, analysis)
	if err != nil {
		return CachedAnalysis{}, fmt.Errorf("store analysis: %w", err)
	}
	analysis.ID = id
	s.Cache.Put(fingerprint, analysis)

	metrics.ObservePipelineDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("analysis.complete", map[string]any{
		"fingerprint":   fingerprint,
		"analysis_id":   analysis.ID,
		"overall_score": analysis.OverallScore,
	})
	return analysis, nil
}

// Get returns a stored analysis by its provenance id.
func (s *Service) Get(ctx context.Context, id int64) (CachedAnalysis, error) {
	return s.Repo.GetByID(ctx, id)
}

// Recent returns up to limit stored analyses, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]CachedAnalysis, error) {
	return s.Repo.Recent(ctx, limit)
}

// archive saves the original upload bytes for later inspection. Failures
// are logged and never fail the request.
func (s *Service) archive(ctx context.Context, filename string, data []byte) {
	if s.Archive == nil {
		return
	}
	if _, _, err := s.Archive.Save(ctx, filename, bytes.NewReader(data)); err != nil {
		telemetry.Warn("analysis.archive_failed", map[string]any{
			"filename": filename,
			"err":      err.Error(),
		})
	}
}
