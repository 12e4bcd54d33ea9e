package parallel

import (
	"math"
	"sync/atomic"
)

// AtomicFloat64s is a fixed-size array of float64 accumulators supporting
// lock-free concurrent addition.
type AtomicFloat64s struct {
	bits []atomic.Uint64
}

// NewAtomicFloat64s returns n accumulators set to zero.
func NewAtomicFloat64s(n int) *AtomicFloat64s {
	return &AtomicFloat64s{bits: make([]atomic.Uint64, n)}
}

// Len returns the number of accumulators.
func (a *AtomicFloat64s) Len() int { return len(a.bits) }

// Add adds delta to slot i with a compare-and-swap loop.
func (a *AtomicFloat64s) Add(i int, delta float64) {
	slot := &a.bits[i]
	for {
		old := slot.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if slot.CompareAndSwap(old, next) {
			return
		}
	}
}

// Load returns the current value of slot i.
func (a *AtomicFloat64s) Load(i int) float64 {
	return math.Float64frombits(a.bits[i].Load())
}

// Values copies every slot into a new slice.
func (a *AtomicFloat64s) Values() []float64 {
	out := make([]float64, len(a.bits))
	for i := range a.bits {
		out[i] = math.Float64frombits(a.bits[i].Load())
	}

	return out
}
