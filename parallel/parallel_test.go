package parallel_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_SplitConcatIdentity(t *testing.T) {
	full := parallel.Collect[int](parallel.NewRange(3, 20))
	for i := 0; i <= 17; i++ {
		left, right := parallel.NewRange(3, 20).SplitAt(i)
		assert.Equal(t, i, left.Len())
		assert.Equal(t, 17-i, right.Len())
		got := append(parallel.Collect(left), parallel.Collect(right)...)
		assert.Equal(t, full, got, "split at %d", i)
	}
}

func TestRange_NextBack(t *testing.T) {
	r := parallel.NewRange(0, 3)
	v, ok := r.NextBack()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 1, r.Len())
}

func TestSplit_RefusesShortRanges(t *testing.T) {
	_, right, ok := parallel.Split[int](parallel.NewRange(0, 1))
	assert.False(t, ok)
	assert.Nil(t, right)

	left, right, ok := parallel.Split[int](parallel.NewRange(0, 5))
	require.True(t, ok)
	assert.Equal(t, 2, left.Len())
	assert.Equal(t, 3, right.Len())
}

func TestForEach_VisitsEveryIndexOnce(t *testing.T) {
	const n = 10_000
	hits := make([]int32, n)
	err := parallel.ForEach(context.Background(), n, func(i int) error {
		atomic.AddInt32(&hits[i], 1)
		return nil
	}, parallel.WithWorkers(4), parallel.WithMinLen(7))
	require.NoError(t, err)
	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestDrive_PropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := parallel.ForEach(context.Background(), 1000, func(i int) error {
		if i == 500 {
			return boom
		}
		return nil
	}, parallel.WithWorkers(3), parallel.WithMinLen(10))
	assert.ErrorIs(t, err, boom)
}

func TestDrive_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := parallel.ForEach(ctx, 1000, func(int) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDrive_InvalidOption(t *testing.T) {
	err := parallel.ForEach(context.Background(), 10, func(int) error { return nil }, parallel.WithWorkers(-1))
	assert.ErrorIs(t, err, parallel.ErrOptionViolation)
}

func TestSharedSlice_DisjointWriters(t *testing.T) {
	buf := make([]int, 4096)
	shared := parallel.NewSharedSlice(buf)
	err := parallel.ForEach(context.Background(), shared.Len(), func(i int) error {
		*shared.At(i) = i * 2
		return nil
	}, parallel.WithWorkers(8), parallel.WithMinLen(16))
	require.NoError(t, err)
	for i, v := range shared.Slice() {
		assert.Equal(t, i*2, v)
	}
}

func TestAtomicFloat64s_ConcurrentAdds(t *testing.T) {
	acc := parallel.NewAtomicFloat64s(2)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				acc.Add(0, 0.5)
				acc.Add(1, 1)
			}
		}()
	}
	wg.Wait()
	assert.InDelta(t, 4000.0, acc.Load(0), 1e-9)
	assert.Equal(t, []float64{4000, 8000}, acc.Values())
}

func TestDrive_CollectsAllItemsUnordered(t *testing.T) {
	var mu sync.Mutex
	var seen []int
	err := parallel.Drive[int](context.Background(), parallel.NewRange(0, 300), func(v int) error {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
		return nil
	}, parallel.WithWorkers(4), parallel.WithMinLen(5))
	require.NoError(t, err)
	sort.Ints(seen)
	assert.Equal(t, parallel.Collect[int](parallel.NewRange(0, 300)), seen)
}
