package collections

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b yield the same values in the same order.
// It is the structural equality shared by every ordered sequence: a List and
// an interval holding the same integers are equal.
func Equal[T comparable](a, b Iterable[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for v := range a.All() {
		w, ok := next()
		if !ok || v != w {
			return false
		}
	}
	_, more := next()
	return !more
}

// HashInts computes the ordered-sequence hash of seq: starting from 1, each
// element e folds in as h = 31*h + int32(e), with int32 wrap-around.
// Equal sequences hash equally regardless of their concrete type.
func HashInts[T constraints.Signed](seq iter.Seq[T]) int32 {
	h := int32(1)
	for e := range seq {
		h = 31*h + elementHash(int64(e))
	}
	return h
}

// elementHash folds a 64-bit value to 32 bits; values that fit in int32 hash
// to themselves.
func elementHash(v int64) int32 {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return int32(v)
	}
	return int32(v ^ (v >> 32))
}
