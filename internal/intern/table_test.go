package intern

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boxed struct{ n int }

func TestGetReturnsSameInstance(t *testing.T) {
	tbl := New[int, *boxed]()

	a := tbl.Get(1, func() *boxed { return &boxed{n: 1} })
	b := tbl.Get(1, func() *boxed { return &boxed{n: 99} })

	assert.Same(t, a, b)
	assert.Equal(t, 1, b.n, "second create must not run")
	assert.Equal(t, 1, tbl.Len())
}

func TestLookup(t *testing.T) {
	tbl := New[[2]int64, *boxed]()

	_, ok := tbl.Lookup([2]int64{1, 2})
	assert.False(t, ok)

	created := tbl.Get([2]int64{1, 2}, func() *boxed { return &boxed{n: 3} })
	found, ok := tbl.Lookup([2]int64{1, 2})
	require.True(t, ok)
	assert.Same(t, created, found)
}

func TestGetConcurrent(t *testing.T) {
	tbl := New[string, *boxed]()
	const workers = 32

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []*boxed
		calls   int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := tbl.Get("key", func() *boxed {
				mu.Lock()
				calls++
				mu.Unlock()
				return &boxed{}
			})
			mu.Lock()
			results = append(results, v)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	require.Len(t, results, workers)
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
