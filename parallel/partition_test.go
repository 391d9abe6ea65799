package parallel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandwi/gs-collections-sub005/collections"
	"github.com/sandwi/gs-collections-sub005/parallel"
)

// assertCovers checks that batches tile [0, n) in order with no gaps.
func assertCovers(t *testing.T, batches []parallel.Batch, n int) {
	t.Helper()
	next := 0
	for i, b := range batches {
		assert.Equal(t, i, b.Index)
		assert.Equal(t, next, b.Start, "batch %d", i)
		assert.Positive(t, b.Size, "batch %d", i)
		next = b.End()
	}
	assert.Equal(t, n, next)
}

func TestPartitionBySize(t *testing.T) {
	tests := []struct {
		name      string
		n, size   int
		wantSizes []int
	}{
		{"exact", 9, 3, []int{3, 3, 3}},
		{"remainder", 10, 3, []int{3, 3, 3, 1}},
		{"one per batch", 4, 1, []int{1, 1, 1, 1}},
		{"single batch", 5, 5, []int{5}},
		{"batch larger than source", 3, 10, []int{3}},
		{"empty", 0, 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches, err := parallel.PartitionBySize(tt.n, tt.size)
			require.NoError(t, err)
			var sizes []int
			for _, b := range batches {
				sizes = append(sizes, b.Size)
			}
			assert.Equal(t, tt.wantSizes, sizes)
			assertCovers(t, batches, tt.n)
		})
	}
}

func TestPartitionBySizeRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := rng.Intn(5000)
		size := 1 + rng.Intn(700)
		batches, err := parallel.PartitionBySize(n, size)
		require.NoError(t, err)
		assert.Len(t, batches, (n+size-1)/size, "n=%d size=%d", n, size)
		assertCovers(t, batches, n)
		for _, b := range batches[:max(len(batches)-1, 0)] {
			assert.Equal(t, size, b.Size)
		}
	}
}

func TestPartitionByCount(t *testing.T) {
	batches, err := parallel.PartitionByCount(10, 3)
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, 3, batches[0].Size)
	assert.Equal(t, 3, batches[1].Size)
	assert.Equal(t, 4, batches[2].Size, "last batch absorbs the remainder")
	assertCovers(t, batches, 10)

	batches, err = parallel.PartitionByCount(2, 8)
	require.NoError(t, err)
	assert.Len(t, batches, 2)
	assertCovers(t, batches, 2)

	batches, err = parallel.PartitionByCount(0, 8)
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestPartitionInvalid(t *testing.T) {
	_, err := parallel.PartitionBySize(10, 0)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	_, err = parallel.PartitionBySize(-1, 2)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	_, err = parallel.PartitionByCount(10, 0)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestBatchString(t *testing.T) {
	b := parallel.Batch{Index: 2, Start: 10, Size: 5}
	assert.Equal(t, 15, b.End())
	assert.Equal(t, "batch 2 [10,15)", b.String())
}
