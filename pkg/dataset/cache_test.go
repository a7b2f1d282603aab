package dataset

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens-engine/pkg/models"
)

func TestResultCache(t *testing.T) {
	cache := NewResultCache()

	_, ok := cache.Get("missing.csv")
	assert.False(t, ok)

	summary := &models.TableSummary{Name: "a.csv", Kind: models.SummaryKindTabular}
	cache.Set("a.csv", summary)

	got, ok := cache.Get("a.csv")
	require.True(t, ok)
	assert.Same(t, summary, got)
	assert.Equal(t, 1, cache.Len())

	cache.Clear()
	_, ok = cache.Get("a.csv")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestResultCache_ConcurrentAccess(t *testing.T) {
	cache := NewResultCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("file-%d.csv", i%5)
			cache.Set(key, &models.TableSummary{Name: key})
			cache.Get(key)
			cache.Len()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, cache.Len())
}
