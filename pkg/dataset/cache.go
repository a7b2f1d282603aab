package dataset

import (
	"sync"

	"github.com/datalens-ai/datalens-engine/pkg/models"
)

// ResultCache memoizes table summaries per file path so repeated context
// requests within a session skip re-parsing. Entries live until an explicit
// Clear; there is no TTL and no file-watch invalidation, so a caller that
// knows the file changed must clear the cache itself.
type ResultCache interface {
	Get(path string) (*models.TableSummary, bool)
	Set(path string, summary *models.TableSummary)
	Clear()
	// Len reports the number of cached summaries.
	Len() int
}

type resultCache struct {
	mu      sync.Mutex
	entries map[string]*models.TableSummary
}

// NewResultCache creates an empty in-memory result cache.
func NewResultCache() ResultCache {
	return &resultCache{
		entries: make(map[string]*models.TableSummary),
	}
}

func (c *resultCache) Get(path string) (*models.TableSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	summary, ok := c.entries[path]
	return summary, ok
}

func (c *resultCache) Set(path string, summary *models.TableSummary) {
	c.mu.Lock()
	c.entries[path] = summary
	c.mu.Unlock()
}

func (c *resultCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*models.TableSummary)
	c.mu.Unlock()
}

func (c *resultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

var _ ResultCache = (*resultCache)(nil)
