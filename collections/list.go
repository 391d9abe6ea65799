package collections

import (
	"cmp"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"sort"
)

// List is a generic, slice-backed ordered collection.
//
// Transformation methods (Filter, Reverse, Take, ...) return a *new* List and
// leave the receiver unchanged. Add and AddAll mutate the receiver in place;
// they exist so a List can serve as the accumulation target of a single
// goroutine, e.g. one batch of a parallel Select. A List is safe for
// concurrent reads but not for concurrent Add.
//
//	l := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int, _ int) bool { return n%2 == 0 }).
//	    Take(2)
//
// Operations that change the element type are package-level functions:
// [Map], [FlatMap], [Reduce], [GroupBy], [Zip].
type List[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items (copied).
func New[T any](items ...T) *List[T] {
	return From(items)
}

// From creates a List from a slice (the slice is copied).
func From[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// Empty creates an empty List of type T.
func Empty[T any]() *List[T] {
	return &List[T]{items: []T{}}
}

// WithCapacity creates an empty List with room for n items.
func WithCapacity[T any](n int) *List[T] {
	if n < 0 {
		n = 0
	}
	return &List[T]{items: make([]T, 0, n)}
}

// Collect copies every element of src into a new List, in iteration order.
func Collect[T any](src Iterable[T]) *List[T] {
	if l, ok := src.(*List[T]); ok {
		return From(l.items)
	}
	out := WithCapacity[T](src.Size())
	src.Each(func(item T) { out.items = append(out.items, item) })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends item to the receiver.
func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
}

// AddAll appends every item to the receiver.
func (l *List[T]) AddAll(items ...T) {
	l.items = append(l.items, items...)
}

// AddList appends every item of other, preserving its order.
func (l *List[T]) AddList(other *List[T]) {
	l.items = append(l.items, other.items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns a copy of the underlying slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ToJSON serialises the items to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// Size returns the number of items.
func (l *List[T]) Size() int { return len(l.items) }

// Count is an alias for [List.Size].
func (l *List[T]) Count() int { return len(l.items) }

// IsEmpty reports whether the list contains no items.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// IsNotEmpty reports whether the list has at least one item.
func (l *List[T]) IsNotEmpty() bool { return len(l.items) > 0 }

// Get returns the item at index, or [ErrIndexOutOfRange].
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, IndexError(index, len(l.items))
	}
	return l.items[index], nil
}

// At returns the item at index. It panics when index is out of range.
func (l *List[T]) At(index int) T { return l.items[index] }

// String returns a JSON representation of the list.
func (l *List[T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item) for every item in order.
func (l *List[T]) Each(fn func(T)) {
	for _, item := range l.items {
		fn(item)
	}
}

// EachWithIndex calls fn(item, index) for every item in order.
func (l *List[T]) EachWithIndex(fn func(T, int)) {
	for i, item := range l.items {
		fn(item, i)
	}
}

// All returns a sequence over the items.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the list is empty or no item
// satisfies the predicate.
func (l *List[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range l.items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[0], true
}

// Last returns the last item, optionally matching fns[0].
func (l *List[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(l.items) - 1; i >= 0; i-- {
			if fns[0](l.items[i]) {
				return l.items[i], true
			}
		}
		return zero, false
	}
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[len(l.items)-1], true
}

// Search returns the index of the first item for which fn returns true, or -1.
func (l *List[T]) Search(fn func(T) bool) int {
	for i, item := range l.items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new list with only the items for which fn(item, index)
// returns true.
func (l *List[T]) Filter(fn func(T, int) bool) *List[T] {
	out := make([]T, 0, len(l.items))
	for i, item := range l.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return &List[T]{items: out}
}

// Reject is the complement of [List.Filter].
func (l *List[T]) Reject(fn func(T, int) bool) *List[T] {
	return l.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Reverse returns a new list with items in reversed order.
func (l *List[T]) Reverse() *List[T] {
	out := l.ToSlice()
	slices.Reverse(out)
	return &List[T]{items: out}
}

// Sort returns a new list sorted by less. The sort is stable.
func (l *List[T]) Sort(less func(a, b T) bool) *List[T] {
	out := l.ToSlice()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &List[T]{items: out}
}

// Take returns at most n items from the start.
// A negative n returns items from the end (Take(-3) is the last 3 items).
func (l *List[T]) Take(n int) *List[T] {
	total := len(l.items)
	if n < 0 {
		return From(l.items[max(total+n, 0):])
	}
	return From(l.items[:min(n, total)])
}

// Skip returns a new list without the first n items.
func (l *List[T]) Skip(n int) *List[T] {
	if n <= 0 {
		return From(l.items)
	}
	if n >= len(l.items) {
		return Empty[T]()
	}
	return From(l.items[n:])
}

// Chunk splits the list into consecutive groups of size.
// The last group may contain fewer than size items.
func (l *List[T]) Chunk(size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	chunks := make([][]T, 0, (len(l.items)+size-1)/size)
	for i := 0; i < len(l.items); i += size {
		end := min(i+size, len(l.items))
		chunk := make([]T, end-i)
		copy(chunk, l.items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Partition splits the list in two: the items for which fn returns true,
// and the rest.
func (l *List[T]) Partition(fn func(T) bool) (*List[T], *List[T]) {
	pass := Empty[T]()
	fail := Empty[T]()
	for _, item := range l.items {
		if fn(item) {
			pass.items = append(pass.items, item)
		} else {
			fail.items = append(fail.items, item)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the list left to right starting from initial.
func (l *List[T]) Reduce(fn func(carry, item T) T, initial T) T {
	result := initial
	for _, item := range l.items {
		result = fn(result, item)
	}
	return result
}

// MinBy returns the item with the smallest key, or [ErrEmptyCollection].
func MinBy[T any, K cmp.Ordered](l *List[T], key func(T) K) (T, error) {
	var zero T
	if len(l.items) == 0 {
		return zero, ErrEmptyCollection
	}
	best, bestKey := l.items[0], key(l.items[0])
	for _, item := range l.items[1:] {
		if k := key(item); k < bestKey {
			best, bestKey = item, k
		}
	}
	return best, nil
}

// MaxBy returns the item with the largest key, or [ErrEmptyCollection].
func MaxBy[T any, K cmp.Ordered](l *List[T], key func(T) K) (T, error) {
	var zero T
	if len(l.items) == 0 {
		return zero, ErrEmptyCollection
	}
	best, bestKey := l.items[0], key(l.items[0])
	for _, item := range l.items[1:] {
		if k := key(item); k > bestKey {
			best, bestKey = item, k
		}
	}
	return best, nil
}
