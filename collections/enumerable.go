package collections

import "iter"

// Sized is satisfied by every container whose element count is known
// without traversal.
type Sized interface {
	// Size returns the number of elements.
	Size() int
}

// Iterable is a finite, restartable, ordered-or-unordered source of T.
//
// Accept Iterable in your own functions so that lists, sets, bags and
// intervals can be substituted for one another.
type Iterable[T any] interface {
	Sized

	// Each calls fn for every element in iteration order.
	Each(fn func(T))

	// All returns a range-over-func sequence of the elements.
	All() iter.Seq[T]
}

// RandomAccess is an Iterable whose elements can be addressed by position in
// constant time. The parallel utility splits RandomAccess sources into
// batches without copying them.
type RandomAccess[T any] interface {
	Iterable[T]

	// At returns the element at index. Like a slice index expression it
	// panics when index is out of range; use the container's Get for a
	// checked variant.
	At(index int) T
}

// Enumerable is the query surface satisfied by [List][T].
type Enumerable[T any] interface {
	Iterable[T]

	// ToSlice returns a copy of every item as a plain Go slice.
	ToSlice() []T

	// Count returns the number of items.
	Count() int

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(T) bool) (T, bool)

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(T) bool) (T, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection contains at least one item.
	IsNotEmpty() bool
}
