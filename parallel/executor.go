package parallel

import (
	"context"
	"sync"

	"github.com/eapache/queue"
)

// Executor runs submitted tasks, possibly on other goroutines.
//
// Tasks submitted by this package never panic: every batch recovers its own
// panics before returning to the executor.
type Executor interface {
	// Submit schedules task. It returns an error if the task will never run.
	Submit(task func()) error
}

// Synchronous is an Executor that runs each task on the submitting goroutine
// before Submit returns.
type Synchronous struct{}

// Submit runs task inline.
func (Synchronous) Submit(task func()) error {
	task()
	return nil
}

// FixedPool is an Executor backed by a fixed number of worker goroutines
// draining a shared FIFO of pending tasks.
//
// A FixedPool must be shut down with [FixedPool.Shutdown] once it is no
// longer needed; [FixedPool.AwaitTermination] waits for the queued tasks to
// drain and the workers to exit.
type FixedPool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending *queue.Queue
	closed  bool
	size    int
	workers sync.WaitGroup
}

// NewFixedPool starts a pool of n workers. n <= 0 selects
// [DefaultParallelism].
func NewFixedPool(n int) *FixedPool {
	if n <= 0 {
		n = DefaultParallelism()
	}
	p := &FixedPool{
		pending: queue.New(),
		size:    n,
	}
	p.cond = sync.NewCond(&p.mu)
	p.workers.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

// Size returns the number of workers.
func (p *FixedPool) Size() int { return p.size }

// Submit enqueues task. It returns [ErrExecutorClosed] after Shutdown.
func (p *FixedPool) Submit(task func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrExecutorClosed
	}
	p.pending.Add(task)
	p.cond.Signal()
	return nil
}

// Shutdown stops accepting tasks. Tasks already queued still run.
// Calling Shutdown more than once is a no-op.
func (p *FixedPool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.cond.Broadcast()
}

// AwaitTermination blocks until every worker has exited after Shutdown, or
// ctx is done.
func (p *FixedPool) AwaitTermination(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.workers.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *FixedPool) work() {
	defer p.workers.Done()
	for {
		p.mu.Lock()
		for p.pending.Length() == 0 && !p.closed {
			p.cond.Wait()
		}
		if p.pending.Length() == 0 {
			p.mu.Unlock()
			return
		}
		task := p.pending.Remove().(func())
		p.mu.Unlock()
		task()
	}
}
