package collections_test

import (
	"fmt"
	"strconv"

	"github.com/sandwi/gs-collections-sub005/collections"
)

func ExampleNew() {
	l := collections.New(1, 2, 3, 4, 5)
	fmt.Println(l.Size(), l.Reduce(func(a, b int) int { return a + b }, 0))
	// Output: 5 15
}

func ExampleList_Filter() {
	result := collections.New(1, 2, 3, 4, 5, 6).
		Filter(func(n, _ int) bool { return n%2 == 0 }).
		ToSlice()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleList_Partition() {
	evens, odds := collections.New(1, 2, 3, 4, 5).
		Partition(func(n int) bool { return n%2 == 0 })
	fmt.Println(evens.ToSlice(), odds.ToSlice())
	// Output: [2 4] [1 3 5]
}

func ExampleMap() {
	result := collections.Map(
		collections.New(1, 2, 3),
		func(n int) string { return strconv.Itoa(n * n) },
	)
	fmt.Println(result.ToSlice())
	// Output: [1 4 9]
}

func ExampleZip() {
	pairs := collections.Zip(collections.New("a", "b", "c"), collections.New(1, 2, 3))
	pairs.Each(func(p collections.Pair[string, int]) {
		fmt.Printf("%s=%d\n", p.First, p.Second)
	})
	// Output:
	// a=1
	// b=2
	// c=3
}

func ExampleBag() {
	b := collections.NewBag("x", "y", "x")
	fmt.Println(b.Size(), b.Occurrences("x"))
	// Output: 3 2
}
