// Package collections provides the container types and capability interfaces
// shared by the lazy, interval and parallel packages.
//
// # Capabilities
//
// Code in this module depends on small capability interfaces rather than on
// concrete containers:
//
//   - [Sized]: the element count is known without traversal.
//   - [Iterable]: a finite, restartable source that can be walked with Each
//     or ranged over with All.
//   - [RandomAccess]: an Iterable addressable by position in O(1).
//
// [List], [Set], [Bag] and interval.Interval each implement the subset they
// support; nothing inherits from a common base type.
//
// # Containers
//
// [List] is an ordered, slice-backed sequence whose transformation methods
// return new lists:
//
//	evens := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }) // [2 4 6]
//
// [Set] keeps distinct values in insertion order and [Bag] counts
// occurrences. All three double as the per-goroutine accumulation targets
// of the parallel package; none of them locks.
//
// # Type-transforming operations
//
// Go methods cannot introduce type parameters, so type-changing operations
// are package-level functions over any Iterable: [Map], [FlatMap],
// [Reduce], [GroupBy], [KeyBy], [Zip], [Collapse].
//
// # Ordered-sequence contract
//
// [Equal] compares any two Iterables element by element and [HashInts]
// computes the matching order-sensitive hash, so a List and an interval
// denoting the same integers are equal and hash alike.
package collections
