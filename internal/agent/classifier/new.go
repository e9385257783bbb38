// Package classifier maps free text to an intent plus an argument bag using
// ordered, case-insensitive keyword rules. It performs no learned inference:
// the same text always yields the same classification.
package classifier

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"storefront-assistant/internal/agent"
)

// DefaultCacheSize bounds the classification memo cache.
const DefaultCacheSize = 1024

type cached struct {
	intent agent.Intent
	args   agent.Args
}

// Classifier classifies queries. Classification is a pure function of the
// input text, so results are memoized in an LRU keyed by the raw text.
type Classifier struct {
	rules []rule
	cache *lru.Cache[string, cached]
}

// New creates a classifier with the default rule set. cacheSize <= 0 falls
// back to DefaultCacheSize.
func New(cacheSize int) *Classifier {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	// Only errors on size <= 0, which is excluded above.
	cache, _ := lru.New[string, cached](cacheSize)

	return &Classifier{
		rules: defaultRules(),
		cache: cache,
	}
}
