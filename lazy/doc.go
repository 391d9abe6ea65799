// Package lazy provides [Iterable], a deferred, restartable sequence built on
// range-over-func iterators.
//
// Intermediate operations (Select, Reject, Take, Drop, Collect, Distinct,
// Chunk, Concat, Zip) only compose functions; nothing is evaluated until a
// terminal operation (Each, ToSlice, ToList, Count, Detect, InjectInto, Min,
// Max) walks the sequence. Every terminal walk restarts the source, so an
// Iterable derived from an interval can be consumed any number of times.
//
//	squares := lazy.Collect(
//	    lazy.FromSlice([]int{1, 2, 3, 4}).Select(func(n int) bool { return n%2 == 0 }),
//	    func(n int) int { return n * n },
//	)
//	squares.ToSlice() // [4 16]
package lazy
