package collections

import "iter"

// This file contains package-level generic functions for operations that
// change the element type. Go methods cannot introduce type parameters, so
// these are stand-alone functions accepting any [Iterable]:
//
//	squares := collections.Map(collections.New(1, 2, 3),
//	    func(n int) string { return strconv.Itoa(n * n) })

// Map applies fn to every element and returns a new List[U].
func Map[T, U any](src Iterable[T], fn func(T) U) *List[U] {
	out := WithCapacity[U](src.Size())
	src.Each(func(item T) { out.items = append(out.items, fn(item)) })
	return out
}

// FlatMap applies fn to every element and flattens the resulting slices.
//
//	words := collections.FlatMap(collections.New("hello world", "foo bar"),
//	    strings.Fields)
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](src Iterable[T], fn func(T) []U) *List[U] {
	out := WithCapacity[U](src.Size())
	src.Each(func(item T) { out.items = append(out.items, fn(item)...) })
	return out
}

// Reduce folds src left to right into a value of type U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](src Iterable[T], fn func(U, T) U, initial U) U {
	result := initial
	src.Each(func(item T) { result = fn(result, item) })
	return result
}

// GroupBy groups elements by the key extracted by fn. Within a group,
// elements keep their iteration order.
func GroupBy[T any, K comparable](src Iterable[T], fn func(T) K) map[K]*List[T] {
	groups := make(map[K]*List[T])
	src.Each(func(item T) {
		k := fn(item)
		g, ok := groups[k]
		if !ok {
			g = Empty[T]()
			groups[k] = g
		}
		g.items = append(g.items, item)
	})
	return groups
}

// MergeGroups appends every group of src onto the matching group of dst,
// creating groups as needed. The parallel GroupBy combiner folds batch-local
// groupings with it in batch order.
func MergeGroups[T any, K comparable](dst, src map[K]*List[T]) {
	for k, g := range src {
		if existing, ok := dst[k]; ok {
			existing.AddList(g)
			continue
		}
		dst[k] = g
	}
}

// KeyBy builds a map keyed by fn. When several elements share a key, the
// last one wins.
func KeyBy[T any, K comparable](src Iterable[T], fn func(T) K) map[K]T {
	out := make(map[K]T, src.Size())
	src.Each(func(item T) { out[fn(item)] = item })
	return out
}

// Zip pairs elements of a and b by position, stopping at the shorter one.
//
//	pairs := collections.Zip(
//	    collections.New("a", "b", "c"),
//	    collections.New(1, 2, 3),
//	) // → [(a,1), (b,2), (c,3)]
func Zip[A, B any](a Iterable[A], b Iterable[B]) *List[Pair[A, B]] {
	out := WithCapacity[Pair[A, B]](min(a.Size(), b.Size()))
	next, stop := iter.Pull(b.All())
	defer stop()
	for v := range a.All() {
		w, ok := next()
		if !ok {
			break
		}
		out.items = append(out.items, Pair[A, B]{First: v, Second: w})
	}
	return out
}

// Combine creates a map from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if len(keys) != len(values).
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// Collapse flattens a List of slices into a single List (one level only).
func Collapse[T any](l *List[[]T]) *List[T] {
	total := 0
	for _, chunk := range l.items {
		total += len(chunk)
	}
	out := WithCapacity[T](total)
	for _, chunk := range l.items {
		out.items = append(out.items, chunk...)
	}
	return out
}
