package lsp

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vet-dev/vet/internal/verify"
)

// verifyCacheCapacity bounds the number of distinct finding ids whose
// verification result is retained.
const verifyCacheCapacity = 512

// pendingExpiry bounds how long a finding id can stay marked "pending"
// before a new verify request for it is allowed to proceed, guarding
// against a goroutine that never reports back.
const pendingExpiry = 60 * time.Second

// verifyTTL bounds how long a cached verification result is trusted
// before it is treated as absent: a Live result for a since-rotated
// credential must not be shown forever.
const verifyTTL = 300 * time.Second

// cacheEntry pairs a verification result with the time it was recorded,
// so Peek can apply verifyTTL.
type cacheEntry struct {
	result     verify.Result
	insertedAt time.Time
}

// VerifyCache holds verification results keyed by finding id and tracks
// in-flight requests so a second click on the same diagnostic before the
// first completes is a no-op.
type VerifyCache struct {
	mu      sync.Mutex
	cache   *lru.Cache[string, cacheEntry]
	pending map[string]time.Time
}

// NewVerifyCache builds an empty cache of the fixed capacity.
func NewVerifyCache() *VerifyCache {
	c, _ := lru.New[string, cacheEntry](verifyCacheCapacity)
	return &VerifyCache{cache: c, pending: make(map[string]time.Time)}
}

// Peek returns the cached result for findingID without affecting recency,
// for use on the hot diagnostic-rebuild path that runs on every scan. A
// result older than verifyTTL is treated as absent.
func (c *VerifyCache) Peek(findingID string) *verify.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache.Peek(findingID)
	if !ok || time.Since(entry.insertedAt) >= verifyTTL {
		return nil
	}
	r := entry.result
	return &r
}

// TryBegin marks findingID pending if it is not already pending (or its
// prior pending mark has expired), returning true when the caller should
// proceed with a verify.Registry.Verify call.
func (c *VerifyCache) TryBegin(findingID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if started, ok := c.pending[findingID]; ok && time.Since(started) < pendingExpiry {
		return false
	}
	c.pending[findingID] = time.Now()
	return true
}

// Complete records a successful verification result, evicting the pending
// mark, and promotes findingID to most-recently-used.
func (c *VerifyCache) Complete(findingID string, res verify.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, findingID)
	c.cache.Add(findingID, cacheEntry{result: res, insertedAt: time.Now()})
}

// Fail clears the pending mark without recording a result, letting a later
// call retry immediately.
func (c *VerifyCache) Fail(findingID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, findingID)
}
