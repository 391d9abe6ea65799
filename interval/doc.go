// Package interval provides Interval, an immutable arithmetic progression of
// signed integers that computes its elements from three fields instead of
// storing them.
//
//	iv := interval.OneTo(10)                     // 1, 2, ..., 10
//	down := interval.FromTo(10, -10)             // 10, 9, ..., -10
//	byFive, _ := down.By(-5)                     // 10, 5, 0, -5, -10
//	evens := byFive.Select(func(n int) bool { return n%2 == 0 }).ToSlice()
//	// [10 0 -10]
//
// Size, Get, Contains, IndexOf and BinarySearch run in constant time.
// Select, Reject and Collect return restartable lazy sequences; Take, Drop,
// Chunk and ReverseThis return new intervals.
//
// An Interval is a collections.RandomAccess, so it can be handed to the
// parallel package without being copied. It equals, and hashes like, any
// ordered sequence holding the same values in the same order.
//
// Intervals encode to a versioned, checksummed binary form
// (MarshalBinary) and to JSON as {"from":1,"to":10,"step":1}. Decoding
// rejects anything a constructor would reject.
package interval
