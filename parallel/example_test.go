package parallel_test

import (
	"context"
	"fmt"

	"github.com/sandwi/gs-collections-sub005/collections"
	"github.com/sandwi/gs-collections-sub005/parallel"
)

func ExampleSelect() {
	src := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	evens, err := parallel.Select(context.Background(), src,
		func(n int) bool { return n%2 == 0 },
		parallel.WithBatchSize(3))
	if err != nil {
		panic(err)
	}
	fmt.Println(evens.ToSlice())
	// Output: [2 4 6 8 10]
}

func ExampleSumByLong() {
	src := collections.New(1, 2, 3, 4, 5)
	totals, _ := parallel.SumByLong(context.Background(), src,
		func(n int) bool { return n%2 == 0 },
		func(n int) int64 { return int64(n) * 10 },
		parallel.WithExecutor(parallel.Synchronous{}), parallel.WithBatchSize(2))
	fmt.Println(totals[true], totals[false])
	// Output: 60 90
}

func ExamplePartitionBySize() {
	batches, _ := parallel.PartitionBySize(10, 4)
	for _, b := range batches {
		fmt.Println(b)
	}
	// Output:
	// batch 0 [0,4)
	// batch 1 [4,8)
	// batch 2 [8,10)
}

func ExampleFixedPool() {
	pool := parallel.NewFixedPool(4)
	defer pool.Shutdown()

	n, err := parallel.Count(context.Background(), collections.New(3, 6, 9, 10, 12),
		func(n int) bool { return n%3 == 0 },
		parallel.WithExecutor(pool), parallel.WithBatchSize(2))
	fmt.Println(n, err)
	// Output: 4 <nil>
}
