package collections

import "iter"

// Set is an insertion-ordered set of comparable values.
//
// Like [List], a Set is the accumulation target of a single goroutine; it
// performs no locking of its own.
type Set[T comparable] struct {
	index map[T]struct{}
	order []T
}

// NewSet creates a Set holding the distinct items, in first-seen order.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]struct{}, len(items))}
	s.AddAll(items...)
	return s
}

// Add inserts item and reports whether it was not already present.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.order = append(s.order, item)
	return true
}

// AddAll inserts every item.
func (s *Set[T]) AddAll(items ...T) {
	for _, item := range items {
		s.Add(item)
	}
}

// AddSet inserts every member of other, in other's order.
func (s *Set[T]) AddSet(other *Set[T]) {
	s.AddAll(other.order...)
}

// Contains reports whether item is a member.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Size returns the number of members.
func (s *Set[T]) Size() int { return len(s.order) }

// Each calls fn for every member in insertion order.
func (s *Set[T]) Each(fn func(T)) {
	for _, item := range s.order {
		fn(item)
	}
}

// All returns a sequence over the members in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.order {
			if !yield(item) {
				return
			}
		}
	}
}

// ToSlice returns the members in insertion order.
func (s *Set[T]) ToSlice() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// Equal reports whether both sets have the same members, ignoring order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, item := range s.order {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}
