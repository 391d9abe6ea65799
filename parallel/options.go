package parallel

import (
	"fmt"

	"github.com/sandwi/gs-collections-sub005/collections"
)

// DefaultMinForkSize is the smallest batch the planner creates when no
// explicit batch size is given. Sources below twice this size run as a
// single batch on the calling goroutine.
const DefaultMinForkSize = 10000

// Options configures one parallel invocation. The zero value of a field
// means "use the default" except where noted.
type Options struct {
	// BatchSize fixes the number of elements per batch. Zero lets the
	// planner derive batches from MinForkSize and TaskCount.
	BatchSize int

	// MinForkSize is the minimum number of elements per derived batch.
	MinForkSize int

	// TaskCount caps the number of derived batches.
	TaskCount int

	// Parallelism is the worker count of the pool created for the call
	// when Executor is nil.
	Parallelism int

	// Executor runs the batches. When nil, a FixedPool is created for the
	// call and shut down before it returns. A supplied Executor is never
	// shut down by this package.
	Executor Executor
}

// Option is a functional option applied on top of [DefaultOptions].
type Option func(*Options)

// DefaultOptions returns the defaults: DefaultMinForkSize, two batches per
// available CPU, and one worker per available CPU.
func DefaultOptions() Options {
	p := DefaultParallelism()
	return Options{
		MinForkSize: DefaultMinForkSize,
		TaskCount:   2 * p,
		Parallelism: p,
	}
}

// WithBatchSize fixes the number of elements per batch.
func WithBatchSize(n int) Option {
	return func(o *Options) { o.BatchSize = n }
}

// WithMinForkSize sets the minimum derived batch size.
func WithMinForkSize(n int) Option {
	return func(o *Options) { o.MinForkSize = n }
}

// WithTaskCount caps the number of derived batches.
func WithTaskCount(n int) Option {
	return func(o *Options) { o.TaskCount = n }
}

// WithParallelism sets the worker count of the per-call pool.
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = n }
}

// WithExecutor runs batches on exec instead of a per-call pool.
func WithExecutor(exec Executor) Option {
	return func(o *Options) { o.Executor = exec }
}

// WithOptions replaces every field with the values in src, filling zero
// fields from the defaults.
func WithOptions(src Options) Option {
	return func(o *Options) {
		def := *o
		*o = src
		if o.MinForkSize == 0 {
			o.MinForkSize = def.MinForkSize
		}
		if o.TaskCount == 0 {
			o.TaskCount = def.TaskCount
		}
		if o.Parallelism == 0 {
			o.Parallelism = def.Parallelism
		}
	}
}

func newOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.validate()
}

func (o Options) validate() error {
	switch {
	case o.BatchSize < 0:
		return fmt.Errorf("%w: batch size %d must be >= 0", collections.ErrInvalidArgument, o.BatchSize)
	case o.MinForkSize < 0:
		return fmt.Errorf("%w: min fork size %d must be >= 0", collections.ErrInvalidArgument, o.MinForkSize)
	case o.TaskCount < 0:
		return fmt.Errorf("%w: task count %d must be >= 0", collections.ErrInvalidArgument, o.TaskCount)
	case o.Parallelism < 0:
		return fmt.Errorf("%w: parallelism %d must be >= 0", collections.ErrInvalidArgument, o.Parallelism)
	}
	return nil
}
