// Package future provides a typed, write-once deferred value.
//
// A Future is settled exactly once, either with a value or with an error.
// Futures built with Resolved or Rejected are settled on creation; Go settles
// its future when the supplied function returns. Await blocks until the
// future settles or the context is done.
package future

import (
	"context"
	"errors"
	"fmt"
)

// ErrPanic is wrapped by the error of a future whose function panicked.
var ErrPanic = errors.New("panic in deferred computation")

// Future is a value that becomes available later.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

var closed = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Resolved returns a future already settled with v.
func Resolved[T any](v T) *Future[T] {
	return &Future[T]{done: closed, val: v}
}

// Rejected returns a future already settled with err.
func Rejected[T any](err error) *Future[T] {
	return &Future[T]{done: closed, err: err}
}

// From settles a future from a (value, error) pair.
func From[T any](v T, err error) *Future[T] {
	if err != nil {
		return Rejected[T](err)
	}
	return Resolved(v)
}

// Go runs fn on a new goroutine. A panic in fn rejects the future with an
// error wrapping ErrPanic.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
		f.val, f.err = fn()
	}()
	return f
}

// Done returns a channel closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the future has settled.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the future settles or ctx is done.
// A settled future is returned even when ctx is already cancelled.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then chains fn onto f. When f is already settled fn runs on the caller's
// goroutine; otherwise it runs once f settles. An error from f skips fn.
func Then[T, U any](ctx context.Context, f *Future[T], fn func(T) (U, error)) *Future[U] {
	if f.Ready() {
		if f.err != nil {
			return Rejected[U](f.err)
		}
		return From(fn(f.val))
	}
	return Go(func() (U, error) {
		v, err := f.Await(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	})
}

// All joins fs in order. The first error in input order wins.
func All[T any](ctx context.Context, fs []*Future[T]) *Future[[]T] {
	collect := func() ([]T, error) {
		out := make([]T, len(fs))
		for i, f := range fs {
			v, err := f.Await(ctx)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	for _, f := range fs {
		if !f.Ready() {
			return Go(collect)
		}
	}
	return From(collect())
}
