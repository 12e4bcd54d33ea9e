package parallel_test

import (
	"context"
	"testing"

	"github.com/AnacletoLAB/ensmallen-sub009/parallel"
)

// BenchmarkAtomicFloat64s_Add measures contended accumulation on 64 slots.
func BenchmarkAtomicFloat64s_Add(b *testing.B) {
	acc := parallel.NewAtomicFloat64s(64)
	b.ResetTimer()
	_ = parallel.ForEach(context.Background(), b.N, func(i int) error {
		acc.Add(i&63, 1)
		return nil
	})
}
