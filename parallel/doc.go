// Package parallel provides the fork-join building blocks used by every
// parallel scan of the graph engine.
//
// What
//
//   - Producer: a splittable, double-ended iterator over a contiguous range.
//     Splitting a producer at any index yields two disjoint producers whose
//     outputs, concatenated in order, equal the parent's output.
//   - Drive: recursively bisects a producer and runs the halves on a bounded
//     errgroup. When every worker slot is busy the half is processed inline
//     by the caller goroutine, which keeps all workers busy without a
//     dedicated scheduler.
//   - ForEach: Drive over the integer range [0, n).
//   - SharedSlice: a buffer written concurrently at caller-guaranteed
//     disjoint indices. It is the single place where aliasing element
//     pointers are handed out to concurrent code.
//   - AtomicFloat64s: a float64 accumulator array for targets that several
//     workers may legitimately hit at once.
//
// Ordering
//
//	Sequential iteration (Next / NextBack) is ordered. Drive makes no
//	promise about the order in which items reach the callback, only that
//	every item is delivered exactly once.
//
// Cancellation
//
//	Drive stops handing out work once ctx is done or a callback fails; the
//	first error is returned.
package parallel
