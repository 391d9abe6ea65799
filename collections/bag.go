package collections

import "iter"

// Bag is a multiset: an unordered collection that counts occurrences.
//
// Iteration visits distinct values in first-seen order, each repeated by
// its count. Only multiset equality is meaningful between bags.
type Bag[T comparable] struct {
	counts map[T]int
	order  []T
	size   int
}

// NewBag creates a Bag holding items.
func NewBag[T comparable](items ...T) *Bag[T] {
	b := &Bag[T]{counts: make(map[T]int)}
	for _, item := range items {
		b.Add(item)
	}
	return b
}

// Add records one occurrence of item.
func (b *Bag[T]) Add(item T) {
	b.AddOccurrences(item, 1)
}

// AddOccurrences records n occurrences of item. n <= 0 is a no-op.
func (b *Bag[T]) AddOccurrences(item T, n int) {
	if n <= 0 {
		return
	}
	if _, ok := b.counts[item]; !ok {
		b.order = append(b.order, item)
	}
	b.counts[item] += n
	b.size += n
}

// AddBag merges every occurrence recorded in other.
func (b *Bag[T]) AddBag(other *Bag[T]) {
	for _, item := range other.order {
		b.AddOccurrences(item, other.counts[item])
	}
}

// Occurrences returns how many times item was added.
func (b *Bag[T]) Occurrences(item T) int { return b.counts[item] }

// DistinctSize returns the number of distinct values.
func (b *Bag[T]) DistinctSize() int { return len(b.order) }

// Size returns the total number of occurrences.
func (b *Bag[T]) Size() int { return b.size }

// Each calls fn once per occurrence.
func (b *Bag[T]) Each(fn func(T)) {
	for _, item := range b.order {
		for i := 0; i < b.counts[item]; i++ {
			fn(item)
		}
	}
}

// All returns a sequence over every occurrence.
func (b *Bag[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range b.order {
			for i := 0; i < b.counts[item]; i++ {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Equal reports multiset equality.
func (b *Bag[T]) Equal(other *Bag[T]) bool {
	if b.size != other.size || len(b.order) != len(other.order) {
		return false
	}
	for item, n := range b.counts {
		if other.counts[item] != n {
			return false
		}
	}
	return true
}
