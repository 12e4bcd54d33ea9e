package walks

import (
	"math"
	"math/bits"
	"sort"
)

// Splitmix64 is the SplitMix64 finalizer. It maps nearby inputs to
// unrelated outputs and is used to derive per-walk seeds.
//
// Complexity: O(1).
func Splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// zeroStateFill replaces an all-zero xorshift state, which is a fixed point.
const zeroStateFill uint64 = 0x2545f4914f6cdd1d

// stream is a xorshift64 generator. It is not safe for concurrent use; each
// walk owns one.
type stream struct{ state uint64 }

func newStream(seed uint64) stream {
	if seed == 0 {
		seed = zeroStateFill
	}
	return stream{state: seed}
}

func (s *stream) next() uint64 {
	x := s.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	s.state = x
	return x
}

// uniform returns a value in [0, n) using the high word of a 64x64 product.
func (s *stream) uniform(n uint64) uint64 {
	hi, _ := bits.Mul64(s.next(), n)
	return hi
}

// float returns a value in [0, 1).
func (s *stream) float() float64 {
	return float64(s.next()>>11) * (1.0 / (1 << 53))
}

// weighted draws an index with probability proportional to weights. The
// slice is overwritten with its prefix sums. A zero or non-finite total
// falls back to a uniform draw.
func (s *stream) weighted(weights []float64) int {
	var total float64
	for i, w := range weights {
		total += w
		weights[i] = total
	}
	if !(total > 0) || math.IsInf(total, 0) || math.IsNaN(total) {
		return int(s.uniform(uint64(len(weights))))
	}
	target := s.float() * total
	i := sort.SearchFloat64s(weights, target)
	// SearchFloat64s finds the first prefix >= target; a draw landing on an
	// exact prefix belongs to the next bucket
	for i < len(weights)-1 && weights[i] <= target {
		i++
	}
	return i
}

// sample writes k distinct indices drawn uniformly from [0, n) into out,
// using Floyd's algorithm, and returns them in ascending order.
// k must be <= n.
func (s *stream) sample(n uint64, k int, out []uint64) []uint64 {
	out = out[:0]
	for j := n - uint64(k); j < n; j++ {
		t := s.uniform(j + 1)
		if contains(out, t) {
			t = j
		}
		out = append(out, t)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

func contains(xs []uint64, x uint64) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
