// Package future provides a single-resolution value: a slot that is settled
// at most once with either a value or an error, and that can be observed by
// blocking or by callback.
package future

import (
	"context"
	"sync"

	"github.com/storacha/go-hashsign/core/result"
)

// Future is a value that becomes available later. The zero value is not
// usable; create one with New, Resolved or Rejected.
type Future[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	settled   bool
	value     T
	err       error
	callbacks []func(T, error)
}

// New creates a pending future.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved creates a future already settled with value.
func Resolved[T any](value T) *Future[T] {
	f := New[T]()
	f.Resolve(value)
	return f
}

// Rejected creates a future already settled with err.
func Rejected[T any](err error) *Future[T] {
	f := New[T]()
	f.Reject(err)
	return f
}

// Resolve settles the future with value. It returns false if the future was
// already settled, in which case nothing changes.
func (f *Future[T]) Resolve(value T) bool {
	return f.Settle(value, nil)
}

// Reject settles the future with err. It returns false if the future was
// already settled, in which case nothing changes.
func (f *Future[T]) Reject(err error) bool {
	var zero T
	return f.Settle(zero, err)
}

// Settle resolves the future with value when err is nil and rejects it with
// err otherwise. Callbacks registered with OnSettle run in registration order
// on the calling goroutine before Settle returns.
func (f *Future[T]) Settle(value T, err error) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}
	f.settled = true
	if err == nil {
		f.value = value
	} else {
		f.err = err
	}
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb(f.value, f.err)
	}
	return true
}

// OnSettle registers fn to be called once the future settles. If it already
// has, fn is called immediately on the calling goroutine.
func (f *Future[T]) OnSettle(fn func(T, error)) {
	f.mu.Lock()
	if !f.settled {
		f.callbacks = append(f.callbacks, fn)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()
	fn(f.value, f.err)
}

// Done returns a channel that is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether the future has a value or an error.
func (f *Future[T]) Settled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settled
}

// Result returns the outcome and true once settled, or nil and false while
// still pending.
func (f *Future[T]) Result() (result.Result[T, error], bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.settled {
		return nil, false
	}
	return result.Wrap(f.value, f.err), true
}

// Await blocks until the future settles or the context is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then returns a future settled with fn applied to this one's value. Errors
// pass through without calling fn.
func Then[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	out := New[U]()
	f.OnSettle(func(v T, err error) {
		r := result.AndThen(result.Wrap(v, err), func(v T) result.Result[U, error] {
			u, err := fn(v)
			return result.Wrap(u, err)
		})
		out.Settle(result.Unwrap(r))
	})
	return out
}

// Pipe settles dst with whatever src settles with.
func Pipe[T any](src, dst *Future[T]) {
	src.OnSettle(func(v T, err error) {
		dst.Settle(v, err)
	})
}
