package parallel

// Producer is a splittable double-ended iterator over an ordered range.
//
// Implementations must guarantee that for every 0 <= i <= Len(),
// SplitAt(i) returns a left part of length i and a right part of length
// Len()-i whose outputs, concatenated, equal the unsplit output.
// A producer is used by a single goroutine at a time.
type Producer[T any] interface {
	// Len returns the number of items left.
	Len() int
	// Next pops the first item.
	Next() (T, bool)
	// NextBack pops the last item.
	NextBack() (T, bool)
	// SplitAt divides the remaining items at offset index.
	SplitAt(index int) (Producer[T], Producer[T])
}

// Split bisects p at its midpoint. It refuses ranges shorter than two
// items, returning p unchanged and ok == false.
func Split[T any](p Producer[T]) (left, right Producer[T], ok bool) {
	n := p.Len()
	if n < 2 {
		return p, nil, false
	}
	left, right = p.SplitAt(n / 2)

	return left, right, true
}

// Collect drains p in order.
func Collect[T any](p Producer[T]) []T {
	out := make([]T, 0, p.Len())
	for {
		v, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Range is a Producer over the integers [Start, End).
type Range struct {
	Start int
	End   int
}

// NewRange returns the producer over [start, end).
func NewRange(start, end int) *Range {
	if end < start {
		end = start
	}

	return &Range{Start: start, End: end}
}

// Len implements Producer.
func (r *Range) Len() int { return r.End - r.Start }

// Next implements Producer.
func (r *Range) Next() (int, bool) {
	if r.Start >= r.End {
		return 0, false
	}
	r.Start++

	return r.Start - 1, true
}

// NextBack implements Producer.
func (r *Range) NextBack() (int, bool) {
	if r.Start >= r.End {
		return 0, false
	}
	r.End--

	return r.End, true
}

// SplitAt implements Producer.
func (r *Range) SplitAt(index int) (Producer[int], Producer[int]) {
	mid := r.Start + index

	return &Range{Start: r.Start, End: mid}, &Range{Start: mid, End: r.End}
}
