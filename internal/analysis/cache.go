package analysis

import "sync"

// Cache maps a content fingerprint to a previously computed analysis.
// Pure key-value semantics: no TTL, no size bound. Concurrent writes for
// the same fingerprint are allowed; the value is idempotent by design.
type Cache interface {
	Get(fingerprint string) (CachedAnalysis, bool)
	Put(fingerprint string, analysis CachedAnalysis)
}

// MemoryCache stores analyses in memory and is safe for concurrent use.
type MemoryCache struct {
	mu            sync.RWMutex
	byFingerprint map[string]CachedAnalysis
}

// NewMemoryCache constructs a MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{byFingerprint: make(map[string]CachedAnalysis)}
}

// Get returns the cached analysis for the fingerprint, if any.
func (c *MemoryCache) Get(fingerprint string) (CachedAnalysis, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	analysis, ok := c.byFingerprint[fingerprint]
	return analysis, ok
}

// Put stores the analysis under the fingerprint.
func (c *MemoryCache) Put(fingerprint string, analysis CachedAnalysis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byFingerprint[fingerprint] = analysis
}

var _ Cache = (*MemoryCache)(nil)
