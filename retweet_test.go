package retweet

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSortableIDOrdering(t *testing.T) {
	const n = 1000
	ids := make([]string, n)
	for i := range ids {
		ids[i] = GenerateSortableID()
	}

	// generation order and lexical order must agree, strictly
	for i := 1; i < n; i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestGenerateSortableIDConcurrentUniqueness(t *testing.T) {
	const workers = 8
	const perWorker = 250

	var wg sync.WaitGroup
	results := make([][]string, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ids := make([]string, perWorker)
			for i := range ids {
				ids[i] = GenerateSortableID()
			}
			results[w] = ids
		}(w)
	}
	wg.Wait()

	var all []string
	for _, ids := range results {
		all = append(all, ids...)
	}
	sort.Strings(all)
	for i := 1; i < len(all); i++ {
		require.NotEqual(t, all[i-1], all[i], "duplicate sortable id")
	}
}
