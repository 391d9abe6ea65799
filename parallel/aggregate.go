package parallel

import (
	"context"

	"github.com/sandwi/gs-collections-sub005/collections"
)

// GroupBy groups the elements of src by key. Within every group elements
// keep their source order.
func GroupBy[T any, K comparable](ctx context.Context, src collections.Iterable[T], key func(T) K, opts ...Option) (map[K]*collections.List[T], error) {
	out := make(map[K]*collections.List[T])
	err := run(ctx, src, opts,
		func(s section[T]) (map[K]*collections.List[T], error) {
			return collections.GroupBy[T, K](s, key), nil
		},
		func(part map[K]*collections.List[T]) { collections.MergeGroups(out, part) },
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AggregateBy folds the elements of every group into a value. Each batch
// starts its groups from zero() and folds with agg; batch results for the
// same key are then combined with merge in batch order.
//
// merge must be associative, and merge(zero(), v) must equal v, for the
// result to match a sequential fold.
func AggregateBy[T any, K comparable, V any](
	ctx context.Context,
	src collections.Iterable[T],
	key func(T) K,
	zero func() V,
	agg func(V, T) V,
	merge func(V, V) V,
	opts ...Option,
) (map[K]V, error) {
	out := make(map[K]V)
	err := run(ctx, src, opts,
		func(s section[T]) (map[K]V, error) {
			part := make(map[K]V)
			s.Each(func(v T) {
				k := key(v)
				acc, ok := part[k]
				if !ok {
					acc = zero()
				}
				part[k] = agg(acc, v)
			})
			return part, nil
		},
		func(part map[K]V) {
			for k, v := range part {
				if prev, ok := out[k]; ok {
					out[k] = merge(prev, v)
				} else {
					out[k] = v
				}
			}
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AggregateInPlaceBy is [AggregateBy] for mutable accumulators: mutate
// updates the group value in place, and merge folds src into dst.
func AggregateInPlaceBy[T any, K comparable, V any](
	ctx context.Context,
	src collections.Iterable[T],
	key func(T) K,
	zero func() V,
	mutate func(V, T),
	merge func(dst, src V),
	opts ...Option,
) (map[K]V, error) {
	out := make(map[K]V)
	err := run(ctx, src, opts,
		func(s section[T]) (map[K]V, error) {
			part := make(map[K]V)
			s.Each(func(v T) {
				k := key(v)
				acc, ok := part[k]
				if !ok {
					acc = zero()
					part[k] = acc
				}
				mutate(acc, v)
			})
			return part, nil
		},
		func(part map[K]V) {
			for k, v := range part {
				if prev, ok := out[k]; ok {
					merge(prev, v)
				} else {
					out[k] = v
				}
			}
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}
