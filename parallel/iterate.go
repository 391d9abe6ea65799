package parallel

import (
	"context"

	"github.com/sandwi/gs-collections-sub005/collections"
)

// Procedure is a per-batch accumulator fed one element at a time. A fresh
// Procedure is created for every batch, so implementations need no locking.
type Procedure[T any] interface {
	Value(item T)
}

// Combiner folds finished per-batch procedures into a final result. Combine
// is called on the calling goroutine, once per batch, in batch order.
type Combiner[P any] interface {
	Combine(p P)
}

// CombinerFunc adapts a function to the Combiner interface.
type CombinerFunc[P any] func(p P)

// Combine calls f(p).
func (f CombinerFunc[P]) Combine(p P) { f(p) }

// ForEach calls fn for every element of src. Calls from different batches
// run concurrently; fn must not touch shared state without its own
// synchronisation.
func ForEach[T any](ctx context.Context, src collections.Iterable[T], fn func(T), opts ...Option) error {
	return run(ctx, src, opts,
		func(s section[T]) (struct{}, error) {
			s.Each(fn)
			return struct{}{}, nil
		},
		func(struct{}) {},
	)
}

// ForEachWithIndex calls fn(item, index) for every element of src, where
// index is the element's position in the source.
func ForEachWithIndex[T any](ctx context.Context, src collections.Iterable[T], fn func(T, int), opts ...Option) error {
	return run(ctx, src, opts,
		func(s section[T]) (struct{}, error) {
			for i := s.batch.Start; i < s.batch.End(); i++ {
				fn(s.src.At(i), i)
			}
			return struct{}{}, nil
		},
		func(struct{}) {},
	)
}

// ForEachErr calls fn for every element of src. The first error returned by
// fn stops its batch and fails the call.
func ForEachErr[T any](ctx context.Context, src collections.Iterable[T], fn func(T) error, opts ...Option) error {
	return run(ctx, src, opts,
		func(s section[T]) (struct{}, error) {
			for v := range s.All() {
				if err := fn(v); err != nil {
					return struct{}{}, err
				}
			}
			return struct{}{}, nil
		},
		func(struct{}) {},
	)
}

// ForEachWithFactory feeds every batch into its own Procedure obtained from
// factory, then hands the procedures to combiner in batch order.
//
//	sums := &summer{}
//	err := parallel.ForEachWithFactory(ctx, src,
//	    func() *summer { return &summer{} },
//	    parallel.CombinerFunc[*summer](func(p *summer) { sums.total += p.total }))
func ForEachWithFactory[T any, P Procedure[T]](
	ctx context.Context,
	src collections.Iterable[T],
	factory func() P,
	combiner Combiner[P],
	opts ...Option,
) error {
	return run(ctx, src, opts,
		func(s section[T]) (P, error) {
			p := factory()
			s.Each(p.Value)
			return p, nil
		},
		combiner.Combine,
	)
}

// Select returns the elements satisfying pred. Elements keep their source
// order.
func Select[T any](ctx context.Context, src collections.Iterable[T], pred func(T) bool, opts ...Option) (*collections.List[T], error) {
	return collectInto(ctx, src, opts, func(s section[T], out *collections.List[T]) {
		s.Each(func(v T) {
			if pred(v) {
				out.Add(v)
			}
		})
	})
}

// Reject returns the elements not satisfying pred, in source order.
func Reject[T any](ctx context.Context, src collections.Iterable[T], pred func(T) bool, opts ...Option) (*collections.List[T], error) {
	return Select(ctx, src, func(v T) bool { return !pred(v) }, opts...)
}

// Collect maps every element through fn, preserving source order.
func Collect[T, U any](ctx context.Context, src collections.Iterable[T], fn func(T) U, opts ...Option) (*collections.List[U], error) {
	return collectInto(ctx, src, opts, func(s section[T], out *collections.List[U]) {
		s.Each(func(v T) { out.Add(fn(v)) })
	})
}

// CollectIf maps the elements satisfying pred through fn, preserving source
// order.
func CollectIf[T, U any](ctx context.Context, src collections.Iterable[T], pred func(T) bool, fn func(T) U, opts ...Option) (*collections.List[U], error) {
	return collectInto(ctx, src, opts, func(s section[T], out *collections.List[U]) {
		s.Each(func(v T) {
			if pred(v) {
				out.Add(fn(v))
			}
		})
	})
}

// FlatCollect maps every element to a slice and concatenates the slices in
// source order.
func FlatCollect[T, U any](ctx context.Context, src collections.Iterable[T], fn func(T) []U, opts ...Option) (*collections.List[U], error) {
	return collectInto(ctx, src, opts, func(s section[T], out *collections.List[U]) {
		s.Each(func(v T) { out.AddAll(fn(v)...) })
	})
}

// collectInto gives each batch its own List and concatenates them in batch
// order.
func collectInto[T, U any](
	ctx context.Context,
	src collections.Iterable[T],
	opts []Option,
	fill func(section[T], *collections.List[U]),
) (*collections.List[U], error) {
	out := collections.Empty[U]()
	err := run(ctx, src, opts,
		func(s section[T]) (*collections.List[U], error) {
			part := collections.WithCapacity[U](s.Size())
			fill(s, part)
			return part, nil
		},
		out.AddList,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SelectToSet returns the distinct elements satisfying pred. Only set
// equality with a sequential select is guaranteed.
func SelectToSet[T comparable](ctx context.Context, src collections.Iterable[T], pred func(T) bool, opts ...Option) (*collections.Set[T], error) {
	out := collections.NewSet[T]()
	err := run(ctx, src, opts,
		func(s section[T]) (*collections.Set[T], error) {
			part := collections.NewSet[T]()
			s.Each(func(v T) {
				if pred(v) {
					part.Add(v)
				}
			})
			return part, nil
		},
		out.AddSet,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SelectToBag returns the elements satisfying pred with their multiplicity.
func SelectToBag[T comparable](ctx context.Context, src collections.Iterable[T], pred func(T) bool, opts ...Option) (*collections.Bag[T], error) {
	out := collections.NewBag[T]()
	err := run(ctx, src, opts,
		func(s section[T]) (*collections.Bag[T], error) {
			part := collections.NewBag[T]()
			s.Each(func(v T) {
				if pred(v) {
					part.Add(v)
				}
			})
			return part, nil
		},
		out.AddBag,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of elements satisfying pred.
func Count[T any](ctx context.Context, src collections.Iterable[T], pred func(T) bool, opts ...Option) (int, error) {
	total := 0
	err := run(ctx, src, opts,
		func(s section[T]) (int, error) {
			n := 0
			s.Each(func(v T) {
				if pred(v) {
					n++
				}
			})
			return n, nil
		},
		func(n int) { total += n },
	)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Detect returns the first element in source order satisfying pred.
func Detect[T any](ctx context.Context, src collections.Iterable[T], pred func(T) bool, opts ...Option) (T, bool, error) {
	type hit struct {
		value T
		ok    bool
	}
	var first hit
	err := run(ctx, src, opts,
		func(s section[T]) (hit, error) {
			for v := range s.All() {
				if pred(v) {
					return hit{value: v, ok: true}, nil
				}
			}
			return hit{}, nil
		},
		func(h hit) {
			if !first.ok && h.ok {
				first = h
			}
		},
	)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return first.value, first.ok, nil
}

// AnySatisfy reports whether some element satisfies pred.
func AnySatisfy[T any](ctx context.Context, src collections.Iterable[T], pred func(T) bool, opts ...Option) (bool, error) {
	_, ok, err := Detect(ctx, src, pred, opts...)
	return ok, err
}

// AllSatisfy reports whether every element satisfies pred.
func AllSatisfy[T any](ctx context.Context, src collections.Iterable[T], pred func(T) bool, opts ...Option) (bool, error) {
	found, err := AnySatisfy(ctx, src, func(v T) bool { return !pred(v) }, opts...)
	return !found, err
}
