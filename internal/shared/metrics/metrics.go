package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	analyzeRequestsTotal  atomic.Uint64
	cacheHitsTotal        atomic.Uint64
	notResumeTotal        atomic.Uint64
	fallbackResultsTotal  atomic.Uint64
	classifierErrorsTotal atomic.Uint64

	pipelineDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncAnalyzeRequests increments the analyze-request counter.
func IncAnalyzeRequests() {
	analyzeRequestsTotal.Add(1)
}

// IncCacheHits increments the fingerprint cache hit counter.
func IncCacheHits() {
	cacheHitsTotal.Add(1)
}

// IncNotResume increments the counter of documents classified as non-resumes.
func IncNotResume() {
	notResumeTotal.Add(1)
}

// IncFallbackResults increments the counter of synthesized fallback results.
func IncFallbackResults() {
	fallbackResultsTotal.Add(1)
}

// IncClassifierErrors increments the counter of fail-open classifier errors.
func IncClassifierErrors() {
	classifierErrorsTotal.Add(1)
}

// ObservePipelineDurationMs records a full pipeline duration in milliseconds.
func ObservePipelineDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	pipelineDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "analyze_requests_total", "Total analyze requests received", analyzeRequestsTotal.Load())
	writeCounter(&buf, "cache_hits_total", "Total fingerprint cache hits", cacheHitsTotal.Load())
	writeCounter(&buf, "not_resume_total", "Total documents classified as not a resume", notResumeTotal.Load())
	writeCounter(&buf, "fallback_results_total", "Total synthesized fallback results", fallbackResultsTotal.Load())
	writeCounter(&buf, "classifier_errors_total", "Total fail-open classifier errors", classifierErrorsTotal.Load())
	writeHistogram(&buf, "pipeline_duration_ms", "Analysis pipeline duration in milliseconds", pipelineDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
