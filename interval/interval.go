package interval

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/sandwi/gs-collections-sub005/collections"
)

// Interval is an immutable arithmetic progression from, from+step, ...
// bounded by to (inclusive). Elements are computed from the three fields on
// demand; nothing is stored.
//
// The zero value is not a valid Interval; use one of the constructors.
type Interval[T constraints.Signed] struct {
	from T
	to   T
	step T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// FromTo returns the interval from a to b, stepping by 1 when a <= b and by
// -1 otherwise.
func FromTo[T constraints.Signed](a, b T) Interval[T] {
	if a <= b {
		return Interval[T]{from: a, to: b, step: 1}
	}
	return Interval[T]{from: a, to: b, step: -1}
}

// FromToBy returns the interval from a to b stepping by step. It fails with
// [collections.ErrInvalidArgument] when step is zero or points away from b.
func FromToBy[T constraints.Signed](a, b, step T) (Interval[T], error) {
	switch {
	case step == 0:
		return Interval[T]{}, fmt.Errorf("%w: step must not be zero", collections.ErrInvalidArgument)
	case a < b && step < 0:
		return Interval[T]{}, fmt.Errorf("%w: step %d cannot reach %d from %d", collections.ErrInvalidArgument, step, b, a)
	case a > b && step > 0:
		return Interval[T]{}, fmt.Errorf("%w: step %d cannot reach %d from %d", collections.ErrInvalidArgument, step, b, a)
	}
	return Interval[T]{from: a, to: b, step: step}, nil
}

// OneTo returns FromTo(1, n).
func OneTo[T constraints.Signed](n T) Interval[T] { return FromTo(1, n) }

// OneToBy returns FromToBy(1, n, step).
func OneToBy[T constraints.Signed](n, step T) (Interval[T], error) { return FromToBy(1, n, step) }

// ZeroTo returns FromTo(0, n).
func ZeroTo[T constraints.Signed](n T) Interval[T] { return FromTo(0, n) }

// ZeroToBy returns FromToBy(0, n, step).
func ZeroToBy[T constraints.Signed](n, step T) (Interval[T], error) { return FromToBy(0, n, step) }

// EvensFromTo returns the even numbers between a and b inclusive, in the
// direction from a to b. The result is empty when there are none.
func EvensFromTo[T constraints.Signed](a, b T) Interval[T] { return parity(a, b, 0) }

// OddsFromTo returns the odd numbers between a and b inclusive, in the
// direction from a to b. The result is empty when there are none.
func OddsFromTo[T constraints.Signed](a, b T) Interval[T] { return parity(a, b, 1) }

// parity moves both bounds inwards to the nearest value whose remainder mod
// 2 is rem and steps by 2 towards b. A bound only moves while the other one
// lies beyond it, so neither leaves the range of T.
func parity[T constraints.Signed](a, b T, rem T) Interval[T] {
	odd := func(v T) T { return v & 1 }
	if a <= b {
		if odd(a) != rem {
			if a == b {
				return empty(a, 2)
			}
			a++
		}
		if odd(b) != rem {
			b--
		}
		if a > b {
			return empty(a, 2)
		}
		return Interval[T]{from: a, to: b, step: 2}
	}
	if odd(a) != rem {
		if a == b {
			return empty(a, -2)
		}
		a--
	}
	if odd(b) != rem {
		b++
	}
	if a < b {
		return empty(a, -2)
	}
	return Interval[T]{from: a, to: b, step: -2}
}

// empty returns an interval with no elements that would start at from. When
// from-step leaves the range of T the pair is shifted one step forward.
func empty[T constraints.Signed](from, step T) Interval[T] {
	if to := from - step; (to < from) == (step > 0) {
		return Interval[T]{from: from, to: to, step: step}
	}
	return Interval[T]{from: from + step, to: from, step: step}
}

// By returns an interval with the receiver's bounds and a new step.
//
//	interval.FromTo(10, -10).By(-5) // 10, 5, 0, -5, -10
func (iv Interval[T]) By(step T) (Interval[T], error) {
	return FromToBy(iv.from, iv.to, step)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// From returns the start bound.
func (iv Interval[T]) From() T { return iv.from }

// To returns the end bound. It is the last element only when step divides
// the distance between the bounds.
func (iv Interval[T]) To() T { return iv.to }

// Step returns the increment between consecutive elements.
func (iv Interval[T]) Step() T { return iv.step }

// Size returns the number of elements, computed in closed form. The span is
// measured in uint64; sizes beyond math.MaxInt saturate.
func (iv Interval[T]) Size() int {
	var span, stride uint64
	switch {
	case iv.step > 0 && iv.to >= iv.from:
		span, stride = uint64(int64(iv.to)-int64(iv.from)), uint64(int64(iv.step))
	case iv.step < 0 && iv.to <= iv.from:
		span, stride = uint64(int64(iv.from)-int64(iv.to)), uint64(-int64(iv.step))
	default:
		return 0
	}
	if q := span / stride; q < math.MaxInt {
		return int(q) + 1
	}
	return math.MaxInt
}

// IsEmpty reports whether the interval has no elements.
func (iv Interval[T]) IsEmpty() bool { return iv.Size() == 0 }

// IsNotEmpty reports whether the interval has at least one element.
func (iv Interval[T]) IsNotEmpty() bool { return iv.Size() > 0 }

// Get returns the element at index, or [collections.ErrIndexOutOfRange].
func (iv Interval[T]) Get(index int) (T, error) {
	if size := iv.Size(); index < 0 || index >= size {
		return 0, collections.IndexError(index, size)
	}
	return iv.from + T(index)*iv.step, nil
}

// At returns the element at index. It panics when index is out of range.
func (iv Interval[T]) At(index int) T {
	v, err := iv.Get(index)
	if err != nil {
		panic(err)
	}
	return v
}

// First returns the first element, or false when the interval is empty.
func (iv Interval[T]) First() (T, bool) {
	if iv.IsEmpty() {
		return 0, false
	}
	return iv.from, true
}

// Last returns the last element, or false when the interval is empty.
func (iv Interval[T]) Last() (T, bool) {
	size := iv.Size()
	if size == 0 {
		return 0, false
	}
	return iv.from + T(size-1)*iv.step, true
}

// Min returns the smallest element, or [collections.ErrEmptyCollection].
func (iv Interval[T]) Min() (T, error) {
	last, ok := iv.Last()
	if !ok {
		return 0, collections.ErrEmptyCollection
	}
	return min(iv.from, last), nil
}

// Max returns the largest element, or [collections.ErrEmptyCollection].
func (iv Interval[T]) Max() (T, error) {
	last, ok := iv.Last()
	if !ok {
		return 0, collections.ErrEmptyCollection
	}
	return max(iv.from, last), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether v is an element of the interval.
func (iv Interval[T]) Contains(v T) bool {
	last, ok := iv.Last()
	if !ok {
		return false
	}
	if iv.step > 0 {
		if v < iv.from || v > last {
			return false
		}
	} else if v > iv.from || v < last {
		return false
	}
	off, stride := iv.offset(v)
	return off%stride == 0
}

// offset returns the distance from the first element to v measured in the
// direction of the step, and the step's magnitude. Both are unsigned so the
// full int64 span is exact. v must not lie before the first element.
func (iv Interval[T]) offset(v T) (off, stride uint64) {
	if iv.step > 0 {
		return uint64(int64(v) - int64(iv.from)), uint64(int64(iv.step))
	}
	return uint64(int64(iv.from) - int64(v)), uint64(-int64(iv.step))
}

// IndexOf returns the position of v, or -1 when v is not an element.
func (iv Interval[T]) IndexOf(v T) int {
	if !iv.Contains(v) {
		return -1
	}
	off, stride := iv.offset(v)
	return int(off / stride)
}

// LastIndexOf is IndexOf; every element of an interval is unique.
func (iv Interval[T]) LastIndexOf(v T) int { return iv.IndexOf(v) }

// IndexOfAny is IndexOf for a value of unknown type. Values that are not a
// T are never found.
func (iv Interval[T]) IndexOfAny(v any) int {
	t, ok := v.(T)
	if !ok {
		return -1
	}
	return iv.IndexOf(t)
}

// LastIndexOfAny is IndexOfAny.
func (iv Interval[T]) LastIndexOfAny(v any) int { return iv.IndexOfAny(v) }

// BinarySearch returns the index of v when present. Otherwise it returns
// -(insertionPoint)-1, where insertionPoint is the index at which v would
// keep the interval in its own order, ascending or descending.
func (iv Interval[T]) BinarySearch(v T) int {
	if i := iv.IndexOf(v); i >= 0 {
		return i
	}
	size := iv.Size()
	if size == 0 {
		return -1
	}
	last, _ := iv.Last()
	var ip int
	switch {
	case iv.step > 0 && v < iv.from, iv.step < 0 && v > iv.from:
		ip = 0
	case iv.step > 0 && v > last, iv.step < 0 && v < last:
		ip = size
	default:
		// v lies strictly between two elements.
		off, stride := iv.offset(v)
		ip = int(off/stride) + 1
	}
	return -ip - 1
}

// ─────────────────────────────────────────────────────────────────────────────
// Structure
// ─────────────────────────────────────────────────────────────────────────────

// ReverseThis returns the interval visiting the same elements in the
// opposite order.
func (iv Interval[T]) ReverseThis() Interval[T] {
	last, ok := iv.Last()
	if !ok {
		return Interval[T]{from: iv.to, to: iv.from, step: -iv.step}
	}
	return Interval[T]{from: last, to: iv.from, step: -iv.step}
}

// Equal reports whether other yields the same values in the same order.
// Any ordered collections.Iterable compares; two intervals compare in O(1).
func (iv Interval[T]) Equal(other collections.Iterable[T]) bool {
	switch o := other.(type) {
	case Interval[T]:
		return iv.sameElements(o)
	case *Interval[T]:
		return o != nil && iv.sameElements(*o)
	}
	return collections.Equal[T](iv, other)
}

func (iv Interval[T]) sameElements(o Interval[T]) bool {
	size := iv.Size()
	switch {
	case size != o.Size():
		return false
	case size == 0:
		return true
	case size == 1:
		return iv.from == o.from
	}
	return iv.from == o.from && iv.step == o.step
}

// HashCode returns the ordered-sequence hash, equal to the hash of a List
// holding the same values.
func (iv Interval[T]) HashCode() int32 {
	return collections.HashInts(iv.All())
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("Interval from: %d to: %d step: %d size: %d", iv.from, iv.to, iv.step, iv.Size())
}
