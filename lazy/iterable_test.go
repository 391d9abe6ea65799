package lazy_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandwi/gs-collections-sub005/collections"
	"github.com/sandwi/gs-collections-sub005/lazy"
)

func isEven(n int) bool { return n%2 == 0 }

func TestSelectRejectAreLazy(t *testing.T) {
	calls := 0
	it := lazy.FromSlice([]int{1, 2, 3, 4}).Tap(func(int) { calls++ }).Select(isEven)
	assert.Equal(t, 0, calls, "nothing should run before a terminal operation")

	assert.Equal(t, []int{2, 4}, it.ToSlice())
	assert.Equal(t, 4, calls)
	assert.Equal(t, []int{1, 3}, lazy.FromSlice([]int{1, 2, 3, 4}).Reject(isEven).ToSlice())
}

func TestRestartable(t *testing.T) {
	it := lazy.FromSlice([]int{1, 2, 3}).Select(func(n int) bool { return n > 1 })
	assert.Equal(t, it.ToSlice(), it.ToSlice())
	assert.Equal(t, 2, it.Size())
}

func TestTakeDrop(t *testing.T) {
	src := lazy.FromSlice([]int{1, 2, 3, 4, 5})

	taken, err := src.Take(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, taken.ToSlice())
	assert.Equal(t, []int{1, 2}, taken.ToSlice())

	all, err := src.Take(10)
	require.NoError(t, err)
	assert.Equal(t, 5, all.Size())

	none, err := src.Take(0)
	require.NoError(t, err)
	assert.True(t, none.IsEmpty())

	dropped, err := src.Drop(3)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, dropped.ToSlice())

	empty, err := src.Drop(5)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = src.Take(-1)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	_, err = src.Drop(-1)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestTakeWhileDropWhile(t *testing.T) {
	src := lazy.FromSlice([]int{1, 2, 5, 1})
	small := func(n int) bool { return n < 3 }
	assert.Equal(t, []int{1, 2}, src.TakeWhile(small).ToSlice())
	assert.Equal(t, []int{5, 1}, src.DropWhile(small).ToSlice())
}

func TestCollectAndFlatCollect(t *testing.T) {
	src := lazy.FromSlice([]int{1, 2, 3})
	assert.Equal(t, []string{"1", "2", "3"}, lazy.Collect(src, strconv.Itoa).ToSlice())
	assert.Equal(t, []int{20}, lazy.CollectIf(src, isEven, func(n int) int { return n * 10 }).ToSlice())
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3},
		lazy.FlatCollect(src, func(n int) []int { return []int{n, n} }).ToSlice())
}

func TestDistinct(t *testing.T) {
	it := lazy.Distinct(lazy.FromSlice([]int{3, 1, 3, 2, 1}))
	assert.Equal(t, []int{3, 1, 2}, it.ToSlice())
	assert.Equal(t, []int{3, 1, 2}, it.ToSlice())
}

func TestChunk(t *testing.T) {
	chunks, err := lazy.Chunk(lazy.FromSlice([]int{1, 2, 3, 4, 5}), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks.ToSlice())

	_, err = lazy.Chunk(lazy.FromSlice([]int{1}), 0)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestConcatZip(t *testing.T) {
	a := lazy.FromSlice([]int{1, 2})
	b := lazy.FromSlice([]int{3})
	assert.Equal(t, []int{1, 2, 3}, lazy.Concat(a, b).ToSlice())

	pairs := lazy.Zip(a, lazy.FromSlice([]string{"x"})).ToSlice()
	require.Len(t, pairs, 1)
	assert.Equal(t, collections.Pair[int, string]{First: 1, Second: "x"}, pairs[0])
}

func TestTerminals(t *testing.T) {
	src := lazy.FromSlice([]int{4, 8, 1, 6})
	assert.Equal(t, 3, src.Count(isEven))

	v, ok := src.Detect(func(n int) bool { return n > 5 })
	assert.True(t, ok)
	assert.Equal(t, 8, v)

	assert.True(t, src.AnySatisfy(isEven))
	assert.False(t, src.AllSatisfy(isEven))
	assert.False(t, src.NoneSatisfy(isEven))
	assert.Equal(t, 19, lazy.InjectInto(src, 0, func(acc, n int) int { return acc + n }))

	lo, err := lazy.Min(src)
	require.NoError(t, err)
	hi, err := lazy.Max(src)
	require.NoError(t, err)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 8, hi)

	_, err = lazy.Min(lazy.FromSlice([]int{}))
	assert.ErrorIs(t, err, collections.ErrEmptyCollection)
}

func TestZeroValueIsEmpty(t *testing.T) {
	var it lazy.Iterable[int]
	assert.True(t, it.IsEmpty())
	assert.Equal(t, 0, it.Size())
}

func TestFromIterable(t *testing.T) {
	l := lazy.FromIterable[int](collections.New(1, 2, 3)).ToList()
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}
