package interval

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/sandwi/gs-collections-sub005/collections"
	"github.com/sandwi/gs-collections-sub005/lazy"
	"github.com/sandwi/gs-collections-sub005/parallel"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every element from first to last.
func (iv Interval[T]) Each(fn func(T)) {
	v := iv.from
	for n := iv.Size(); n > 0; n-- {
		fn(v)
		v += iv.step
	}
}

// EachWithIndex calls fn(element, index) for every element in order.
func (iv Interval[T]) EachWithIndex(fn func(T, int)) {
	v := iv.from
	for i, n := 0, iv.Size(); i < n; i++ {
		fn(v, i)
		v += iv.step
	}
}

// ReverseEach calls fn for every element from last to first.
func (iv Interval[T]) ReverseEach(fn func(T)) {
	iv.ReverseThis().Each(fn)
}

// EachInRange calls fn for the elements at indices start through end
// inclusive, walking backwards when start > end. Both indices must be
// valid, or [collections.ErrIndexOutOfRange] is returned before fn runs.
func (iv Interval[T]) EachInRange(start, end int, fn func(T)) error {
	size := iv.Size()
	if start < 0 || start >= size {
		return collections.IndexError(start, size)
	}
	if end < 0 || end >= size {
		return collections.IndexError(end, size)
	}
	if start <= end {
		for i := start; i <= end; i++ {
			fn(iv.At(i))
		}
		return nil
	}
	for i := start; i >= end; i-- {
		fn(iv.At(i))
	}
	return nil
}

// All returns a sequence over the elements from first to last.
func (iv Interval[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		v := iv.from
		for n := iv.Size(); n > 0; n-- {
			if !yield(v) {
				return
			}
			v += iv.step
		}
	}
}

// Backward returns a sequence over the elements from last to first.
func (iv Interval[T]) Backward() iter.Seq[T] {
	return iv.ReverseThis().All()
}

// EachParallel calls fn for every element using the parallel package. Each
// element is visited exactly once; the order of calls is unspecified.
func (iv Interval[T]) EachParallel(ctx context.Context, fn func(T), opts ...parallel.Option) error {
	return parallel.ForEach[T](ctx, iv, fn, opts...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy derived sequences
// ─────────────────────────────────────────────────────────────────────────────

// Lazy returns a lazy view of the interval.
func (iv Interval[T]) Lazy() lazy.Iterable[T] { return lazy.Of(iv.All()) }

// Select lazily keeps the elements satisfying pred.
func (iv Interval[T]) Select(pred func(T) bool) lazy.Iterable[T] { return iv.Lazy().Select(pred) }

// Reject lazily drops the elements satisfying pred.
func (iv Interval[T]) Reject(pred func(T) bool) lazy.Iterable[T] { return iv.Lazy().Reject(pred) }

// Collect lazily maps every element of iv through fn.
func Collect[T constraints.Signed, U any](iv Interval[T], fn func(T) U) lazy.Iterable[U] {
	return lazy.Collect(iv.Lazy(), fn)
}

// Take returns the first n elements as an interval.
func (iv Interval[T]) Take(n int) (Interval[T], error) {
	if n < 0 {
		return Interval[T]{}, fmt.Errorf("%w: take count %d must be >= 0", collections.ErrInvalidArgument, n)
	}
	switch {
	case n == 0:
		return empty(iv.from, iv.step), nil
	case n >= iv.Size():
		return iv, nil
	}
	return Interval[T]{from: iv.from, to: iv.At(n - 1), step: iv.step}, nil
}

// Drop returns the elements after the first n as an interval.
func (iv Interval[T]) Drop(n int) (Interval[T], error) {
	if n < 0 {
		return Interval[T]{}, fmt.Errorf("%w: drop count %d must be >= 0", collections.ErrInvalidArgument, n)
	}
	size := iv.Size()
	switch {
	case n == 0:
		return iv, nil
	case n >= size:
		return empty(iv.from+T(size)*iv.step, iv.step), nil
	}
	last, _ := iv.Last()
	return Interval[T]{from: iv.At(n), to: last, step: iv.step}, nil
}

// Distinct returns iv; its elements are already unique.
func (iv Interval[T]) Distinct() Interval[T] { return iv }

// Chunk splits the interval into consecutive intervals of size elements.
// The last chunk may be shorter.
func (iv Interval[T]) Chunk(size int) ([]Interval[T], error) {
	if size <= 0 {
		return nil, collections.ErrInvalidChunkSize
	}
	n := iv.Size()
	chunks := make([]Interval[T], 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := min(start+size, n) - 1
		chunks = append(chunks, Interval[T]{from: iv.At(start), to: iv.At(end), step: iv.step})
	}
	return chunks, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice materialises the elements.
func (iv Interval[T]) ToSlice() []T {
	out := make([]T, 0, iv.Size())
	iv.Each(func(v T) { out = append(out, v) })
	return out
}

// ToList materialises the elements into a List.
func (iv Interval[T]) ToList() *collections.List[T] { return collections.From(iv.ToSlice()) }

// ToSet materialises the elements into a Set.
func (iv Interval[T]) ToSet() *collections.Set[T] { return collections.NewSet(iv.ToSlice()...) }

// ToBag materialises the elements into a Bag.
func (iv Interval[T]) ToBag() *collections.Bag[T] { return collections.NewBag(iv.ToSlice()...) }

// Zip pairs the elements of iv with those of other, stopping at the shorter.
func Zip[T constraints.Signed, U any](iv Interval[T], other collections.Iterable[U]) *collections.List[collections.Pair[T, U]] {
	return collections.Zip[T, U](iv, other)
}

// ─────────────────────────────────────────────────────────────────────────────
// Folds
// ─────────────────────────────────────────────────────────────────────────────

// InjectInto folds the elements first to last, starting from seed.
func InjectInto[T constraints.Signed, A any](iv Interval[T], seed A, fn func(A, T) A) A {
	acc := seed
	iv.Each(func(v T) { acc = fn(acc, v) })
	return acc
}

// ReverseInjectInto folds the elements last to first, starting from seed.
func ReverseInjectInto[T constraints.Signed, A any](iv Interval[T], seed A, fn func(A, T) A) A {
	return InjectInto(iv.ReverseThis(), seed, fn)
}

// Count returns the number of elements satisfying pred.
func (iv Interval[T]) Count(pred func(T) bool) int {
	n := 0
	iv.Each(func(v T) {
		if pred(v) {
			n++
		}
	})
	return n
}

// Detect returns the first element satisfying pred.
func (iv Interval[T]) Detect(pred func(T) bool) (T, bool) {
	for v := range iv.All() {
		if pred(v) {
			return v, true
		}
	}
	return 0, false
}

// AnySatisfy reports whether some element satisfies pred.
func (iv Interval[T]) AnySatisfy(pred func(T) bool) bool {
	_, ok := iv.Detect(pred)
	return ok
}

// AllSatisfy reports whether every element satisfies pred.
func (iv Interval[T]) AllSatisfy(pred func(T) bool) bool {
	return !iv.AnySatisfy(func(v T) bool { return !pred(v) })
}

// NoneSatisfy reports whether no element satisfies pred.
func (iv Interval[T]) NoneSatisfy(pred func(T) bool) bool {
	return !iv.AnySatisfy(pred)
}
