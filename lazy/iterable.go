package lazy

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/sandwi/gs-collections-sub005/collections"
)

// Iterable is a lazily evaluated sequence of T.
type Iterable[T any] struct {
	seq iter.Seq[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of wraps seq. seq must be restartable: each call must replay the sequence.
func Of[T any](seq iter.Seq[T]) Iterable[T] {
	return Iterable[T]{seq: seq}
}

// FromSlice returns an Iterable over items. The slice is not copied.
func FromSlice[T any](items []T) Iterable[T] {
	return Of(func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	})
}

// FromIterable adapts any collections.Iterable.
func FromIterable[T any](src collections.Iterable[T]) Iterable[T] {
	return Of(src.All())
}

// All returns the underlying sequence for use in a range clause.
func (it Iterable[T]) All() iter.Seq[T] {
	if it.seq == nil {
		return func(func(T) bool) {}
	}
	return it.seq
}

// ─────────────────────────────────────────────────────────────────────────────
// Intermediate operations
// ─────────────────────────────────────────────────────────────────────────────

// Select keeps the elements for which pred returns true.
func (it Iterable[T]) Select(pred func(T) bool) Iterable[T] {
	src := it.All()
	return Of(func(yield func(T) bool) {
		for v := range src {
			if pred(v) && !yield(v) {
				return
			}
		}
	})
}

// Reject drops the elements for which pred returns true.
func (it Iterable[T]) Reject(pred func(T) bool) Iterable[T] {
	return it.Select(func(v T) bool { return !pred(v) })
}

// Take yields at most the first n elements. n < 0 is rejected with
// [collections.ErrInvalidArgument].
func (it Iterable[T]) Take(n int) (Iterable[T], error) {
	if n < 0 {
		return Iterable[T]{}, fmt.Errorf("%w: take count %d must be >= 0", collections.ErrInvalidArgument, n)
	}
	src := it.All()
	return Of(func(yield func(T) bool) {
		if n == 0 {
			return
		}
		taken := 0
		for v := range src {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}), nil
}

// Drop skips the first n elements. n < 0 is rejected with
// [collections.ErrInvalidArgument].
func (it Iterable[T]) Drop(n int) (Iterable[T], error) {
	if n < 0 {
		return Iterable[T]{}, fmt.Errorf("%w: drop count %d must be >= 0", collections.ErrInvalidArgument, n)
	}
	src := it.All()
	return Of(func(yield func(T) bool) {
		skipped := 0
		for v := range src {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}), nil
}

// TakeWhile yields elements until pred first returns false.
func (it Iterable[T]) TakeWhile(pred func(T) bool) Iterable[T] {
	src := it.All()
	return Of(func(yield func(T) bool) {
		for v := range src {
			if !pred(v) || !yield(v) {
				return
			}
		}
	})
}

// DropWhile skips elements while pred returns true, then yields the rest.
func (it Iterable[T]) DropWhile(pred func(T) bool) Iterable[T] {
	src := it.All()
	return Of(func(yield func(T) bool) {
		dropping := true
		for v := range src {
			if dropping && pred(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	})
}

// Tap calls fn on each element as it flows through.
func (it Iterable[T]) Tap(fn func(T)) Iterable[T] {
	src := it.All()
	return Of(func(yield func(T) bool) {
		for v := range src {
			fn(v)
			if !yield(v) {
				return
			}
		}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal operations
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every element.
func (it Iterable[T]) Each(fn func(T)) {
	for v := range it.All() {
		fn(v)
	}
}

// ToSlice materialises the sequence.
func (it Iterable[T]) ToSlice() []T {
	out := make([]T, 0)
	for v := range it.All() {
		out = append(out, v)
	}
	return out
}

// ToList materialises the sequence into a List.
func (it Iterable[T]) ToList() *collections.List[T] {
	return collections.From(it.ToSlice())
}

// Size walks the sequence and returns its length.
func (it Iterable[T]) Size() int {
	n := 0
	for range it.All() {
		n++
	}
	return n
}

// IsEmpty reports whether the sequence yields nothing.
func (it Iterable[T]) IsEmpty() bool {
	for range it.All() {
		return false
	}
	return true
}

// First returns the first element, or false when the sequence is empty.
func (it Iterable[T]) First() (T, bool) {
	for v := range it.All() {
		return v, true
	}
	var zero T
	return zero, false
}

// Count returns the number of elements satisfying pred.
func (it Iterable[T]) Count(pred func(T) bool) int {
	n := 0
	for v := range it.All() {
		if pred(v) {
			n++
		}
	}
	return n
}

// Detect returns the first element satisfying pred.
func (it Iterable[T]) Detect(pred func(T) bool) (T, bool) {
	return it.Select(pred).First()
}

// AnySatisfy reports whether some element satisfies pred.
func (it Iterable[T]) AnySatisfy(pred func(T) bool) bool {
	_, ok := it.Detect(pred)
	return ok
}

// AllSatisfy reports whether every element satisfies pred. It is true for
// an empty sequence.
func (it Iterable[T]) AllSatisfy(pred func(T) bool) bool {
	return !it.AnySatisfy(func(v T) bool { return !pred(v) })
}

// NoneSatisfy reports whether no element satisfies pred.
func (it Iterable[T]) NoneSatisfy(pred func(T) bool) bool {
	return !it.AnySatisfy(pred)
}

// Min returns the smallest element, or [collections.ErrEmptyCollection].
func Min[T cmp.Ordered](it Iterable[T]) (T, error) {
	return extreme(it, func(a, b T) bool { return a < b })
}

// Max returns the largest element, or [collections.ErrEmptyCollection].
func Max[T cmp.Ordered](it Iterable[T]) (T, error) {
	return extreme(it, func(a, b T) bool { return a > b })
}

func extreme[T any](it Iterable[T], better func(a, b T) bool) (T, error) {
	var best T
	found := false
	for v := range it.All() {
		if !found || better(v, best) {
			best, found = v, true
		}
	}
	if !found {
		return best, collections.ErrEmptyCollection
	}
	return best, nil
}
