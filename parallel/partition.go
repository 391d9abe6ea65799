package parallel

import (
	"fmt"

	"github.com/cznic/mathutil"

	"github.com/sandwi/gs-collections-sub005/collections"
)

// Batch is a contiguous index range [Start, Start+Size) of a source assigned
// to one worker.
type Batch struct {
	// Index is the batch's position in the run; the combiner folds results
	// in ascending Index order.
	Index int

	// Start is the first source index covered by the batch.
	Start int

	// Size is the number of elements in the batch.
	Size int
}

// End returns the exclusive upper bound of the batch.
func (b Batch) End() int { return b.Start + b.Size }

func (b Batch) String() string {
	return fmt.Sprintf("batch %d [%d,%d)", b.Index, b.Start, b.End())
}

// PartitionBySize splits n elements into batches of batchSize elements. The
// final batch holds the remainder when batchSize does not divide n.
func PartitionBySize(n, batchSize int) ([]Batch, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size %d must be > 0", collections.ErrInvalidArgument, batchSize)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: source size %d must be >= 0", collections.ErrInvalidArgument, n)
	}
	batches := make([]Batch, 0, (n+batchSize-1)/batchSize)
	for start := 0; start < n; start += batchSize {
		batches = append(batches, Batch{
			Index: len(batches),
			Start: start,
			Size:  mathutil.Min(batchSize, n-start),
		})
	}
	return batches, nil
}

// PartitionByCount splits n elements into min(count, n) batches of n/count
// elements each; the last batch absorbs the remainder.
func PartitionByCount(n, count int) ([]Batch, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: batch count %d must be > 0", collections.ErrInvalidArgument, count)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: source size %d must be >= 0", collections.ErrInvalidArgument, n)
	}
	if n == 0 {
		return nil, nil
	}
	count = mathutil.Min(count, n)
	size := n / count
	batches := make([]Batch, count)
	for i := range batches {
		batches[i] = Batch{Index: i, Start: i * size, Size: size}
	}
	batches[count-1].Size = n - batches[count-1].Start
	return batches, nil
}

// plan picks the partition for one invocation over n elements. An explicit
// batch size wins. Otherwise sources below twice the minimum fork size run
// as one batch, and larger ones are split into at most TaskCount batches of
// at least MinForkSize elements.
func (o Options) plan(n int) ([]Batch, error) {
	if n == 0 {
		return nil, nil
	}
	if o.BatchSize > 0 {
		return PartitionBySize(n, o.BatchSize)
	}
	minFork := mathutil.Max(o.MinForkSize, 1)
	if n < 2*minFork {
		return PartitionByCount(n, 1)
	}
	count := mathutil.Max(mathutil.Min(o.TaskCount, n/minFork), 1)
	return PartitionByCount(n, count)
}
