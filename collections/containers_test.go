package collections_test

import (
	"testing"

	"github.com/sandwi/gs-collections-sub005/collections"
)

func TestSet(t *testing.T) {
	s := collections.NewSet(1, 2, 2, 3)
	if s.Size() != 3 {
		t.Fatalf("Size = %d; want 3", s.Size())
	}
	if s.Add(2) {
		t.Fatal("Add of an existing member should report false")
	}
	if !s.Add(4) || !s.Contains(4) {
		t.Fatal("Add of a new member failed")
	}
	assertSlice(t, s.ToSlice(), []int{1, 2, 3, 4})
}

func TestSetEqualIgnoresOrder(t *testing.T) {
	if !collections.NewSet(1, 2, 3).Equal(collections.NewSet(3, 2, 1)) {
		t.Fatal("sets with the same members should be equal")
	}
	if collections.NewSet(1, 2).Equal(collections.NewSet(1, 3)) {
		t.Fatal("sets with different members should not be equal")
	}
}

func TestSetAddSet(t *testing.T) {
	s := collections.NewSet(1, 2)
	s.AddSet(collections.NewSet(2, 3))
	assertSlice(t, s.ToSlice(), []int{1, 2, 3})
}

func TestBag(t *testing.T) {
	b := collections.NewBag("a", "b", "a")
	b.AddOccurrences("c", 3)
	b.AddOccurrences("d", 0)
	if b.Size() != 6 || b.DistinctSize() != 3 {
		t.Fatalf("Size/DistinctSize = %d/%d; want 6/3", b.Size(), b.DistinctSize())
	}
	if b.Occurrences("a") != 2 || b.Occurrences("d") != 0 {
		t.Fatal("Occurrences mismatch")
	}
	var n int
	b.Each(func(string) { n++ })
	if n != 6 {
		t.Fatalf("Each visited %d; want 6", n)
	}
}

func TestBagEqualIsMultisetEquality(t *testing.T) {
	left := collections.NewBag(1, 1, 2)
	right := collections.NewBag(2, 1)
	if left.Equal(right) {
		t.Fatal("bags with different counts should not be equal")
	}
	right.Add(1)
	if !left.Equal(right) {
		t.Fatal("bags with the same counts should be equal")
	}
}

func TestBagAddBag(t *testing.T) {
	b := collections.NewBag(1)
	b.AddBag(collections.NewBag(1, 2))
	if b.Occurrences(1) != 2 || b.Occurrences(2) != 1 {
		t.Fatal("AddBag did not merge counts")
	}
}

func TestEqualAcrossContainers(t *testing.T) {
	if !collections.Equal[int](ints(1, 2, 3), collections.NewSet(1, 2, 3)) {
		t.Fatal("same values in the same order should be equal")
	}
	if collections.Equal[int](ints(1, 2, 3), ints(3, 2, 1)) {
		t.Fatal("order must matter")
	}
	if collections.Equal[int](ints(1, 2), ints(1, 2, 3)) {
		t.Fatal("different sizes must not be equal")
	}
}

func TestHashInts(t *testing.T) {
	// 31*(31*(31*1+1)+2)+3
	if got := collections.HashInts(ints(1, 2, 3).All()); got != 30817 {
		t.Fatalf("HashInts = %d; want 30817", got)
	}
	if collections.HashInts(ints(1, 2).All()) == collections.HashInts(ints(2, 1).All()) {
		t.Fatal("hash must be order sensitive")
	}
	if collections.HashInts(ints().All()) != 1 {
		t.Fatal("empty sequence hash must be 1")
	}
}
