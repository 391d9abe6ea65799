package parallel

import (
	"context"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/sandwi/gs-collections-sub005/collections"
)

// SumByInt groups src by groupBy and sums fn within every group. Totals are
// int64 so int values do not wrap at the element width.
func SumByInt[T any, K comparable](
	ctx context.Context,
	src collections.Iterable[T],
	groupBy func(T) K,
	fn func(T) int,
	opts ...Option,
) (map[K]int64, error) {
	return SumByLong(ctx, src, groupBy, func(v T) int64 { return int64(fn(v)) }, opts...)
}

// SumByLong groups src by groupBy and sums fn within every group.
func SumByLong[T any, K comparable](
	ctx context.Context,
	src collections.Iterable[T],
	groupBy func(T) K,
	fn func(T) int64,
	opts ...Option,
) (map[K]int64, error) {
	return AggregateBy(ctx, src, groupBy,
		func() int64 { return 0 },
		func(acc int64, v T) int64 { return acc + fn(v) },
		func(a, b int64) int64 { return a + b },
		opts...,
	)
}

// SumByFloat is [SumByDouble] for float32 values; totals are float64.
func SumByFloat[T any, K comparable](
	ctx context.Context,
	src collections.Iterable[T],
	groupBy func(T) K,
	fn func(T) float32,
	opts ...Option,
) (map[K]float64, error) {
	return SumByDouble(ctx, src, groupBy, func(v T) float64 { return float64(fn(v)) }, opts...)
}

// SumByDouble groups src by groupBy and sums fn within every group. Every
// batch keeps one Kahan accumulator per key and batch partials are merged in
// batch order, so a given partition always yields the same bits.
func SumByDouble[T any, K comparable](
	ctx context.Context,
	src collections.Iterable[T],
	groupBy func(T) K,
	fn func(T) float64,
	opts ...Option,
) (map[K]float64, error) {
	parts, err := AggregateBy(ctx, src, groupBy,
		func() kahan { return kahan{} },
		func(k kahan, v T) kahan {
			k.add(fn(v))
			return k
		},
		func(a, b kahan) kahan {
			a.add(b.sum)
			a.add(-b.c)
			return a
		},
		opts...,
	)
	if err != nil {
		return nil, err
	}
	out := make(map[K]float64, len(parts))
	for k, acc := range parts {
		out[k] = acc.sum
	}
	return out, nil
}

// SumByBigDecimal groups src by groupBy and sums fn exactly within every
// group.
func SumByBigDecimal[T any, K comparable](
	ctx context.Context,
	src collections.Iterable[T],
	groupBy func(T) K,
	fn func(T) decimal.Decimal,
	opts ...Option,
) (map[K]decimal.Decimal, error) {
	return AggregateBy(ctx, src, groupBy,
		func() decimal.Decimal { return decimal.Zero },
		func(acc decimal.Decimal, v T) decimal.Decimal { return acc.Add(fn(v)) },
		decimal.Decimal.Add,
		opts...,
	)
}

// SumByBigInteger groups src by groupBy and sums fn exactly within every
// group. fn's results are not modified.
func SumByBigInteger[T any, K comparable](
	ctx context.Context,
	src collections.Iterable[T],
	groupBy func(T) K,
	fn func(T) *big.Int,
	opts ...Option,
) (map[K]*big.Int, error) {
	return AggregateInPlaceBy(ctx, src, groupBy,
		func() *big.Int { return new(big.Int) },
		func(acc *big.Int, v T) { acc.Add(acc, fn(v)) },
		func(dst, src *big.Int) { dst.Add(dst, src) },
		opts...,
	)
}

// kahan is a running compensated sum; c holds the low-order bits lost so far.
type kahan struct {
	sum, c float64
}

func (k *kahan) add(v float64) {
	y := v - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}
