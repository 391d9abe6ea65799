// Package parallel applies procedures, transformations and aggregations to
// the elements of a collection across a pool of goroutines.
//
// Every entry point follows the same one-shot fork/join:
//
//	partition -> run batches (in parallel) -> join -> combine (in batch order)
//
// The source is split into contiguous [Batch]es that cover every index once.
// Each batch accumulates into its own result (a List, a count, a map of
// partial sums) that no other goroutine touches. After all batches finish,
// the calling goroutine folds the partial results in ascending batch order,
// so any deterministic per-element fold is reproducible regardless of how
// the batches were scheduled:
//
//	evens, err := parallel.Select(ctx, interval.OneTo(1_000_000),
//	    func(n int) bool { return n%2 == 0 },
//	    parallel.WithBatchSize(50_000))
//
// # Executors
//
// Batches run on an [Executor]. Pass one with [WithExecutor] to share a pool
// between calls; the caller keeps ownership and shuts it down. Without one,
// each call creates a [FixedPool] and shuts it down before returning, on
// success or failure. [Synchronous] runs batches inline, which makes tests
// deterministic.
//
// Sources smaller than twice the minimum fork size run as a single batch on
// the calling goroutine.
//
// # Failures
//
// A panic or returned error inside a batch fails the whole call. Batches that
// have not started yet are skipped, batches already running are allowed to
// finish, and the failure of the lowest-numbered failed batch is returned as
// a [*BatchError]. Single-batch and multi-batch runs report failures the same
// way. There is no retry.
package parallel
