package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ruleset/pkg/cache"
)

func TestLRU_Basic(t *testing.T) {
	t.Parallel()

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string, int](2)
		assert.False(t, c.Put("a", 1))
		assert.True(t, c.Put("a", 2))

		v, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, 2, v)

		_, ok = c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("remove and purge", func(t *testing.T) {
		t.Parallel()

		var evicted []string
		c := cache.NewLRU(3, cache.WithEvictCallback(func(k string, _ int) {
			evicted = append(evicted, k)
		}))
		c.Put("a", 1)
		c.Put("b", 2)

		assert.True(t, c.Remove("a"))
		assert.False(t, c.Remove("a"))
		c.Purge()

		assert.Equal(t, 0, c.Len())
		assert.Equal(t, []string{"a", "b"}, evicted)
	})

	t.Run("panics on invalid capacity", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { cache.NewLRU[string, int](0) })
		assert.Panics(t, func() { cache.NewLRU[string, int](-1) })
	})
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // b is now least recently used
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_TTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(d)
	}

	c := cache.NewLRU(4,
		cache.WithTTL[string, int](time.Minute),
		cache.WithClock[string, int](clock),
	)
	c.Put("a", 1)

	advance(30 * time.Second)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	advance(30 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok, "entry expires exactly at its deadline")
	assert.Equal(t, 0, c.Len())
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](64)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", (id+j)%80)
				c.Put(key, j)
				c.Get(key)
				if j%10 == 0 {
					c.Remove(key)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 64)
}
