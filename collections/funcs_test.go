package collections_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/sandwi/gs-collections-sub005/collections"
)

func TestMapFunc(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n int) string {
		return strconv.Itoa(n * 2)
	}).ToSlice()
	assertSlice(t, got, []string{"2", "4", "6"})
}

func TestFlatMapFunc(t *testing.T) {
	got := collections.FlatMap(collections.New("a b", "c"), strings.Fields).ToSlice()
	assertSlice(t, got, []string{"a", "b", "c"})
}

func TestReduceFunc(t *testing.T) {
	s := collections.Reduce(ints(1, 2, 3), func(acc string, n int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	if s != "1,2,3" {
		t.Fatalf("Reduce = %q; want \"1,2,3\"", s)
	}
}

func TestGroupByFunc(t *testing.T) {
	groups := collections.GroupBy(ints(1, 2, 3, 4, 5), func(n int) bool { return n%2 == 0 })
	assertSlice(t, groups[true].ToSlice(), []int{2, 4})
	assertSlice(t, groups[false].ToSlice(), []int{1, 3, 5})
}

func TestMergeGroups(t *testing.T) {
	parity := func(n int) int { return n % 2 }
	dst := collections.GroupBy(ints(1, 2), parity)
	collections.MergeGroups(dst, collections.GroupBy(ints(3, 4, 6), parity))
	assertSlice(t, dst[0].ToSlice(), []int{2, 4, 6})
	assertSlice(t, dst[1].ToSlice(), []int{1, 3})
}

func TestKeyByFunc(t *testing.T) {
	type Item struct{ ID, Rev int }
	items := collections.New(Item{1, 1}, Item{2, 1}, Item{1, 2})
	keyed := collections.KeyBy(items, func(item Item) int { return item.ID })
	if len(keyed) != 2 || keyed[1].Rev != 2 {
		t.Fatalf("KeyBy = %v; last item per key should win", keyed)
	}
}

func TestZipFunc(t *testing.T) {
	pairs := collections.Zip(collections.New("x", "y", "z"), ints(1, 2)).ToSlice()
	if len(pairs) != 2 {
		t.Fatalf("Zip len = %d; want 2", len(pairs))
	}
	if pairs[0].First != "x" || pairs[0].Second != 1 {
		t.Fatalf("Zip[0] = %v; want (x,1)", pairs[0])
	}
}

func TestCombineFunc(t *testing.T) {
	m, err := collections.Combine([]string{"a", "b", "c"}, []int{1, 2, 3})
	if err != nil || m["b"] != 2 {
		t.Fatalf("Combine = %v, %v", m, err)
	}
	if _, err := collections.Combine([]string{"a"}, []int{1, 2}); !errors.Is(err, collections.ErrMismatchedLengths) {
		t.Fatalf("Combine err = %v; want ErrMismatchedLengths", err)
	}
}

func TestCollapseFunc(t *testing.T) {
	flat := collections.Collapse(collections.New([]int{1, 2}, []int{3, 4}, []int{5}))
	assertSlice(t, flat.ToSlice(), []int{1, 2, 3, 4, 5})
}

func TestPairString(t *testing.T) {
	p := collections.Pair[string, int]{First: "hello", Second: 42}
	if got := fmt.Sprint(p); got != "(hello, 42)" {
		t.Fatalf("Pair.String() = %q", got)
	}
}
