package parallel

// SharedSlice wraps a buffer that several goroutines write at the same time.
//
// It is not a synchronization primitive. The contract is that no two
// concurrent callers touch the same index; the usual way to honour it is to
// derive the index from the item being processed (one node id, one edge id,
// one walk number) so that every slot has exactly one logical owner. Reads
// of slots written by other goroutines are only valid after the parallel
// phase has been joined.
type SharedSlice[T any] struct {
	buf []T
}

// NewSharedSlice wraps buf without copying it.
func NewSharedSlice[T any](buf []T) SharedSlice[T] {
	return SharedSlice[T]{buf: buf}
}

// Len returns the length of the buffer.
func (s SharedSlice[T]) Len() int { return len(s.buf) }

// At returns a pointer to slot i. The caller must be the only live user of
// slot i until the parallel phase is joined.
func (s SharedSlice[T]) At(i int) *T { return &s.buf[i] }

// Store writes v into slot i under the same ownership contract as At.
func (s SharedSlice[T]) Store(i int, v T) { s.buf[i] = v }

// Slice returns the wrapped buffer. Call it only after the writers joined.
func (s SharedSlice[T]) Slice() []T { return s.buf }
