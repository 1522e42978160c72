package moderation

import (
	"sync"

	domain "github.com/feedguard/feedguard/pkg/domain/moderation"
)

const DefaultCacheBound = 50

// ResultCache remembers verdicts for text the user already had classified,
// so retyping the same buffer or re-checking at submit time does not hit the
// remote service again.
//
// The key is the exact raw input string. No normalization: whitespace-only
// differences miss on purpose, matching the composer behavior this replaces.
// Eviction is a wholesale clear once the entry count exceeds the bound;
// entries are cheap to recompute, so nothing fancier is warranted.
type ResultCache struct {
	mu      sync.Mutex
	entries map[string]domain.Verdict
	bound   int
}

func NewResultCache(bound int) *ResultCache {
	if bound <= 0 {
		bound = DefaultCacheBound
	}
	return &ResultCache{
		entries: make(map[string]domain.Verdict),
		bound:   bound,
	}
}

func (c *ResultCache) Get(text string) (domain.Verdict, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	verdict, ok := c.entries[text]
	return verdict, ok
}

func (c *ResultCache) Put(text string, verdict domain.Verdict) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[text] = verdict
	if len(c.entries) > c.bound {
		c.entries = make(map[string]domain.Verdict)
	}
}

func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]domain.Verdict)
}
