package interval

import (
	"fmt"
	"math/big"

	"github.com/sandwi/gs-collections-sub005/collections"
)

// Sum returns the sum of the elements in closed form. The result wraps when
// it does not fit in int64; use parallel.SumByBigInteger for such ranges.
func (iv Interval[T]) Sum() int64 {
	last, ok := iv.Last()
	if !ok {
		return 0
	}
	n, ends := int64(iv.Size()), int64(iv.from)+int64(last)
	if n%2 == 0 {
		return n / 2 * ends
	}
	return n * (ends / 2)
}

// Mean returns the arithmetic mean, or [collections.ErrEmptyCollection].
func (iv Interval[T]) Mean() (float64, error) {
	last, ok := iv.Last()
	if !ok {
		return 0, collections.ErrEmptyCollection
	}
	return (float64(iv.from) + float64(last)) / 2, nil
}

// Product returns the product of the elements. It is 1 for an empty
// interval and 0 whenever 0 is an element.
func (iv Interval[T]) Product() *big.Int {
	out := big.NewInt(1)
	if iv.Contains(0) {
		return out.SetInt64(0)
	}
	var f big.Int
	iv.Each(func(v T) { out.Mul(out, f.SetInt64(int64(v))) })
	return out
}

// Factorial returns n! for the intervals OneTo(n) and ZeroTo(n) with n >= 0.
// OneTo(0) is the two elements 1, 0 and yields 1. Any other shape, including
// an empty interval, fails with [collections.ErrIllegalState].
func (iv Interval[T]) Factorial() (*big.Int, error) {
	var n int64
	switch {
	case iv.from == 1 && iv.to == 0 && iv.step == -1:
		n = 0
	case (iv.from == 0 || iv.from == 1) && iv.step == 1 && iv.to >= iv.from:
		n = int64(iv.to)
	default:
		return nil, fmt.Errorf("%w: factorial of %s", collections.ErrIllegalState, iv)
	}
	return new(big.Int).MulRange(1, n), nil
}
