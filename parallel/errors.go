package parallel

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrExecutorClosed is returned by [FixedPool.Submit] after Shutdown.
var ErrExecutorClosed = errors.New("parallel: executor closed")

// errSkipped marks a batch that never ran because another batch failed or the
// caller's context was cancelled first.
var errSkipped = errors.New("parallel: batch skipped")

// BatchError reports the failure of one batch. Cause carries a stack trace;
// errors.Is and errors.As see through it to the error the procedure returned
// or panicked with.
type BatchError struct {
	Batch Batch
	Cause error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("parallel: %s failed: %v", e.Batch, e.Cause)
}

// Unwrap returns the underlying failure.
func (e *BatchError) Unwrap() error { return e.Cause }

// newBatchError wraps a returned error or a recovered panic value.
func newBatchError(b Batch, failure any) *BatchError {
	var cause error
	switch v := failure.(type) {
	case error:
		cause = pkgerrors.WithStack(v)
	default:
		cause = pkgerrors.Errorf("panic: %v", v)
	}
	return &BatchError{Batch: b, Cause: cause}
}
