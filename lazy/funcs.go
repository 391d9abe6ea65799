package lazy

import (
	"iter"

	"github.com/sandwi/gs-collections-sub005/collections"
)

// Collect maps every element through fn.
func Collect[T, U any](it Iterable[T], fn func(T) U) Iterable[U] {
	src := it.All()
	return Of(func(yield func(U) bool) {
		for v := range src {
			if !yield(fn(v)) {
				return
			}
		}
	})
}

// CollectIf maps the elements satisfying pred through fn.
func CollectIf[T, U any](it Iterable[T], pred func(T) bool, fn func(T) U) Iterable[U] {
	return Collect(it.Select(pred), fn)
}

// FlatCollect maps every element to a slice and yields its members in order.
func FlatCollect[T, U any](it Iterable[T], fn func(T) []U) Iterable[U] {
	src := it.All()
	return Of(func(yield func(U) bool) {
		for v := range src {
			for _, u := range fn(v) {
				if !yield(u) {
					return
				}
			}
		}
	})
}

// Distinct yields each value the first time it is seen. The seen-set is
// rebuilt on every traversal.
func Distinct[T comparable](it Iterable[T]) Iterable[T] {
	src := it.All()
	return Of(func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range src {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	})
}

// Chunk groups consecutive elements into slices of size; the last chunk may
// be shorter. size <= 0 is rejected with [collections.ErrInvalidChunkSize].
func Chunk[T any](it Iterable[T], size int) (Iterable[[]T], error) {
	if size <= 0 {
		return Iterable[[]T]{}, collections.ErrInvalidChunkSize
	}
	src := it.All()
	return Of(func(yield func([]T) bool) {
		chunk := make([]T, 0, size)
		for v := range src {
			chunk = append(chunk, v)
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, size)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}), nil
}

// Concat yields every element of each input in turn.
func Concat[T any](its ...Iterable[T]) Iterable[T] {
	return Of(func(yield func(T) bool) {
		for _, it := range its {
			for v := range it.All() {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Zip pairs elements by position and stops at the shorter input.
func Zip[A, B any](a Iterable[A], b Iterable[B]) Iterable[collections.Pair[A, B]] {
	return Of(func(yield func(collections.Pair[A, B]) bool) {
		next, stop := iter.Pull(b.All())
		defer stop()
		for v := range a.All() {
			w, ok := next()
			if !ok || !yield(collections.Pair[A, B]{First: v, Second: w}) {
				return
			}
		}
	})
}

// InjectInto folds the sequence left to right starting from seed.
func InjectInto[T, A any](it Iterable[T], seed A, fn func(A, T) A) A {
	acc := seed
	for v := range it.All() {
		acc = fn(acc, v)
	}
	return acc
}
