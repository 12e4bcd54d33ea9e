package vocabulary

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
)

// ErrNotBuilt indicates a reverse lookup on a vocabulary whose reverse
// mapping is stale.
var ErrNotBuilt = errors.New("vocabulary: reverse mapping not built")

// ErrFull indicates that the id type cannot represent another name.
var ErrFull = fmt.Errorf("vocabulary: id space exhausted: %w", core.ErrInvalidParameter)

// ErrNotDense indicates that the forward map does not cover [0, Len()).
var ErrNotDense = fmt.Errorf("vocabulary: ids are not dense: %w", core.ErrInvalidParameter)

// ID is the set of integer types a vocabulary can hand out.
type ID interface {
	~uint16 | ~uint32
}

// Vocabulary maps names to dense ids of type T and back.
type Vocabulary[T ID] struct {
	ids     map[string]T
	names   []string
	built   bool
	numeric bool
	next    int // ids handed out so far; numeric vocabularies keep no maps
}

// New returns an empty vocabulary with room for capacity names.
func New[T ID](capacity int) *Vocabulary[T] {
	return &Vocabulary[T]{
		ids:   make(map[string]T, capacity),
		names: make([]string, 0, capacity),
		built: true,
	}
}

// FromNames builds a vocabulary assigning ids in slice order.
// Duplicate names are rejected with core.ErrInvalidParameter.
func FromNames[T ID](names []string) (*Vocabulary[T], error) {
	v := New[T](len(names))
	for i, name := range names {
		_, existed, err := v.Insert(name)
		if err != nil {
			return nil, err
		}
		if existed {
			return nil, fmt.Errorf("%w: duplicate name %q at position %d", core.ErrInvalidParameter, name, i)
		}
	}

	return v, nil
}

// Numeric returns a vocabulary of n names where the name of id i is the
// decimal representation of i. It stores no strings.
func Numeric[T ID](n int) (*Vocabulary[T], error) {
	if n < 0 || uint64(n) > maxID[T]() {
		return nil, ErrFull
	}

	return &Vocabulary[T]{built: true, numeric: true, next: n}, nil
}

// maxID is the number of usable ids of T. The all-ones value is reserved as
// the "not present" marker.
func maxID[T ID]() uint64 {
	var zero T

	return uint64(^zero)
}

// Len returns the number of names.
func (v *Vocabulary[T]) Len() int {
	if v.numeric {
		return v.next
	}

	return len(v.ids)
}

// IsNumeric reports whether names are the decimal ids themselves.
func (v *Vocabulary[T]) IsNumeric() bool { return v.numeric }

// IsBuilt reports whether the reverse mapping is in sync with the forward map.
func (v *Vocabulary[T]) IsBuilt() bool { return v.built }

// Insert returns the id of name, adding it when absent.
// The bool result is true when the name was already present.
func (v *Vocabulary[T]) Insert(name string) (T, bool, error) {
	if v.numeric {
		id, err := v.ID(name)
		if err == nil {
			return id, true, nil
		}
		// numeric vocabularies grow only by appending the next id
		if name != strconv.Itoa(v.next) {
			return 0, false, fmt.Errorf("%w: %q is not the next numeric id", core.ErrInvalidParameter, name)
		}
	} else if id, ok := v.ids[name]; ok {
		return id, true, nil
	}
	if uint64(v.next)+1 > maxID[T]() {
		return 0, false, ErrFull
	}
	id := T(v.next)
	v.next++
	if v.numeric {
		return id, false, nil
	}
	v.ids[name] = id
	if v.built {
		v.names = append(v.names, name)
	}

	return id, false, nil
}

// UncheckedInsert adds name with the next id without checking whether it is
// already present, and leaves the reverse mapping stale.
// Inserting a duplicate breaks density and is reported by BuildReverseMapping.
// It must not be used on numeric vocabularies.
func (v *Vocabulary[T]) UncheckedInsert(name string) T {
	id := T(v.next)
	v.next++
	v.ids[name] = id
	v.built = false

	return id
}

// BuildReverseMapping rebuilds the id -> name table from the forward map.
func (v *Vocabulary[T]) BuildReverseMapping() error {
	if v.numeric || v.built {
		return nil
	}
	if len(v.ids) != v.next {
		return fmt.Errorf("%w: %d names for %d ids", ErrNotDense, len(v.ids), v.next)
	}
	names := make([]string, len(v.ids))
	seen := make([]bool, len(v.ids))
	for name, id := range v.ids {
		if int(id) >= len(names) || seen[id] {
			return fmt.Errorf("%w: id %d for %q", ErrNotDense, id, name)
		}
		names[id] = name
		seen[id] = true
	}
	v.names = names
	v.built = true

	return nil
}

// ID returns the id of name.
func (v *Vocabulary[T]) ID(name string) (T, error) {
	if v.numeric {
		n, err := strconv.ParseUint(name, 10, 64)
		if err != nil || n >= uint64(v.next) || strconv.FormatUint(n, 10) != name {
			return 0, fmt.Errorf("%w: %q", core.ErrUnknownName, name)
		}

		return T(n), nil
	}
	id, ok := v.ids[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", core.ErrUnknownName, name)
	}

	return id, nil
}

// Name returns the name of id.
func (v *Vocabulary[T]) Name(id T) (string, error) {
	if int(id) >= v.Len() {
		return "", fmt.Errorf("%w: id %d, vocabulary has %d names", core.ErrInvalidParameter, id, v.Len())
	}
	if v.numeric {
		return strconv.FormatUint(uint64(id), 10), nil
	}
	if !v.built {
		return "", ErrNotBuilt
	}

	return v.names[id], nil
}

// UncheckedName returns the name of id; id must be in range and the
// reverse mapping built.
func (v *Vocabulary[T]) UncheckedName(id T) string {
	if v.numeric {
		return strconv.FormatUint(uint64(id), 10)
	}

	return v.names[id]
}

// Names returns the names ordered by id. The slice is a copy.
func (v *Vocabulary[T]) Names() ([]string, error) {
	if v.numeric {
		out := make([]string, v.next)
		for i := range out {
			out[i] = strconv.Itoa(i)
		}

		return out, nil
	}
	if !v.built {
		return nil, ErrNotBuilt
	}

	return append([]string(nil), v.names...), nil
}
