package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCompute_HitSkipsCompute(t *testing.T) {
	c := New()
	calls := 0

	for i := 0; i < 5; i++ {
		v, err := c.GetOrCompute("categories:list", time.Hour, func() (any, error) {
			calls++
			return []string{"peluches", "munecas"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"peluches", "munecas"}, v)
	}

	assert.Equal(t, 1, calls, "repeated reads within TTL must not recompute")
}

func TestGetOrCompute_ExpiredEntryRecomputes(t *testing.T) {
	c := New()
	calls := 0
	compute := func() (any, error) {
		calls++
		return calls, nil
	}

	v, err := c.GetOrCompute("products:featured", time.Nanosecond, compute)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	time.Sleep(5 * time.Millisecond)

	v, err = c.GetOrCompute("products:featured", time.Nanosecond, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "a read past the TTL recomputes")
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_ErrorIsNotCached(t *testing.T) {
	c := New()
	boom := errors.New("store unreachable")
	calls := 0

	_, err := c.GetOrCompute("product:abc", time.Hour, func() (any, error) {
		calls++
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len(), "a failed computation must leave no entry")

	// Next read retries the backing store instead of serving the failure
	v, err := c.GetOrCompute("product:abc", time.Hour, func() (any, error) {
		calls++
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_ConcurrentMissSharesOneComputation(t *testing.T) {
	c := New()
	var calls atomic.Int64
	gate := make(chan struct{})

	const readers = 20
	var wg sync.WaitGroup
	results := make([]any, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrCompute("products:catalog", time.Hour, func() (any, error) {
				calls.Add(1)
				<-gate
				return "snapshot", nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Let the goroutines pile onto the key, then release the single flight
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load(), "a miss stampede must hit the store once")
	for _, v := range results {
		assert.Equal(t, "snapshot", v)
	}
}

func TestInvalidateAll_DropsEveryEntry(t *testing.T) {
	c := New()

	keys := []string{KeyCategories(), KeyFeatured(), KeyCatalog(), KeyProduct("p1"), KeyCategory("c1"), KeyProductsByCategory("c1")}
	for _, key := range keys {
		_, err := c.GetOrCompute(key, time.Hour, func() (any, error) { return key, nil })
		require.NoError(t, err)
	}
	require.Equal(t, len(keys), c.Len())

	c.InvalidateAll()
	assert.Equal(t, 0, c.Len())

	// Every shape recomputes on the next read
	recomputes := 0
	for _, key := range keys {
		_, err := c.GetOrCompute(key, time.Hour, func() (any, error) {
			recomputes++
			return key, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, len(keys), recomputes, "no shape may survive an invalidation")
}

func TestBroadcaster_ClearsAllCachesAndNeverPanics(t *testing.T) {
	c1 := New()
	c2 := New()
	_, err := c1.GetOrCompute("a", time.Hour, func() (any, error) { return 1, nil })
	require.NoError(t, err)
	_, err = c2.GetOrCompute("b", time.Hour, func() (any, error) { return 2, nil })
	require.NoError(t, err)

	b := NewBroadcaster(c1, c2)
	b.InvalidateAll()

	assert.Equal(t, 0, c1.Len())
	assert.Equal(t, 0, c2.Len())

	// A broadcaster over a nil cache must not take the write down with it
	bad := NewBroadcaster(nil)
	assert.NotPanics(t, func() { bad.InvalidateAll() })
}

func TestTypedGetOrCompute_ReturnsConcreteType(t *testing.T) {
	c := New()

	v, err := GetOrCompute(c, "typed", time.Hour, func() ([]int, error) {
		return []int{1, 2, 3}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v)

	_, err = GetOrCompute(c, "typed-err", time.Hour, func() ([]int, error) {
		return nil, errors.New("nope")
	})
	assert.Error(t, err)
}
