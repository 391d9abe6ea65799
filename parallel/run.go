package parallel

import (
	"context"
	"errors"
	"iter"
	"sync"

	pkgerrors "github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/sandwi/gs-collections-sub005/collections"
)

// section is the read-only view of the source a single batch works on.
type section[T any] struct {
	src   collections.RandomAccess[T]
	batch Batch
}

func (s section[T]) Size() int { return s.batch.Size }

func (s section[T]) Each(fn func(T)) {
	for i := s.batch.Start; i < s.batch.End(); i++ {
		fn(s.src.At(i))
	}
}

func (s section[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.batch.Start; i < s.batch.End(); i++ {
			if !yield(s.src.At(i)) {
				return
			}
		}
	}
}

// randomAccess returns src itself when it supports positional access, or a
// List copy of it otherwise. The copy is made once, before any batch starts.
func randomAccess[T any](src collections.Iterable[T]) collections.RandomAccess[T] {
	if ra, ok := src.(collections.RandomAccess[T]); ok {
		return ra
	}
	return collections.Collect(src)
}

// run is the fork/join shared by every entry point. work computes one
// batch's partial result; fold receives the partial results on the calling
// goroutine, in ascending batch order, after every batch has finished.
// fold is not called when any batch fails.
func run[T, A any](
	ctx context.Context,
	src collections.Iterable[T],
	opts []Option,
	work func(section[T]) (A, error),
	fold func(A),
) error {
	o, err := newOptions(opts...)
	if err != nil {
		return err
	}
	ra := randomAccess(src)
	batches, err := o.plan(ra.Size())
	if err != nil {
		return err
	}
	if len(batches) == 0 {
		return ctx.Err()
	}

	results := make([]A, len(batches))
	errs := make([]error, len(batches))

	if len(batches) == 1 {
		jww.TRACE.Printf("parallel: %d elements in a single batch", ra.Size())
		if err := ctx.Err(); err != nil {
			return err
		}
		results[0], errs[0] = execute(section[T]{src: ra, batch: batches[0]}, work)
	} else {
		jww.DEBUG.Printf("parallel: %d elements in %d batches", ra.Size(), len(batches))
		exec, release := o.executor(len(batches))
		defer release()
		dispatch(ctx, exec, ra, batches, work, results, errs)
	}

	skipped := false
	for _, err := range errs {
		switch {
		case err == nil:
		case errors.Is(err, errSkipped):
			skipped = true
		default:
			jww.WARN.Printf("parallel: %v", err)
			return err
		}
	}
	if skipped {
		if err := ctx.Err(); err != nil {
			return err
		}
		return errSkipped
	}
	for _, r := range results {
		fold(r)
	}
	return nil
}

// dispatch submits one task per batch and waits for all submitted tasks.
// The first failure cancels the batches that have not started.
func dispatch[T, A any](
	parent context.Context,
	exec Executor,
	ra collections.RandomAccess[T],
	batches []Batch,
	work func(section[T]) (A, error),
	results []A,
	errs []error,
) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var wg sync.WaitGroup
	for i, b := range batches {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if ctx.Err() != nil {
				errs[i] = errSkipped
				return
			}
			results[i], errs[i] = execute(section[T]{src: ra, batch: b}, work)
			if errs[i] != nil {
				cancel()
			}
		}
		if err := exec.Submit(task); err != nil {
			wg.Done()
			errs[i] = pkgerrors.WithMessagef(err, "parallel: submit %s", b)
			for j := i + 1; j < len(batches); j++ {
				errs[j] = errSkipped
			}
			cancel()
			break
		}
	}
	wg.Wait()
}

// execute runs work for one batch and converts a returned error or a panic
// into a *BatchError.
func execute[T, A any](s section[T], work func(section[T]) (A, error)) (res A, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newBatchError(s.batch, r)
		}
	}()
	res, err = work(s)
	if err != nil {
		return res, newBatchError(s.batch, err)
	}
	return res, nil
}

// executor returns the Executor for a run over n batches and the function
// that releases it. A pool created here is shut down and drained by release.
func (o Options) executor(n int) (Executor, func()) {
	if o.Executor != nil {
		return o.Executor, func() {}
	}
	size := o.Parallelism
	if size <= 0 {
		size = DefaultParallelism()
	}
	pool := NewFixedPool(min(size, n))
	return pool, func() {
		pool.Shutdown()
		_ = pool.AwaitTermination(context.Background())
	}
}
