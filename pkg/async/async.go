package async

import (
	"context"
	"time"
)

// Future represents the result of a computation running in its own goroutine.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext is like Await but gives up when ctx is done, returning ctx.Err().
// The computation itself keeps running.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout is like Await but returns ErrTimeout after timeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-t.C:
		var zero U
		return zero, ErrTimeout
	}
}

// Done is closed once the computation has completed.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the computation has completed, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Go runs fn in a new goroutine and returns a Future for its result. A context
// that is already done completes the Future with ctx.Err() without calling fn.
func Go[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx)
	}()

	return f
}
