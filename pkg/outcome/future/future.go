package future

import (
	"context"
	"errors"
	"sync"
)

// ErrCanceled is the fault a future settles with when Cancel is called.
var ErrCanceled = errors.New("future: canceled")

// Future represents a computation that eventually yields a T or a fault.
// Create one with New (settle it manually), FromFunc, Resolved or Faulted.
// Settling is first-wins; Await may be called from any number of goroutines
// and they all observe the same outcome.
type Future[T any] struct {
	once sync.Once
	done chan struct{}

	value T
	err   error
}

// New returns an unsettled future.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future already completed with v. This is the degenerate
// "not actually deferred" instance the synchronous combinator forms lift
// through.
func Resolved[T any](v T) *Future[T] {
	f := New[T]()
	f.Complete(v)
	return f
}

// Faulted returns a future already settled with err.
func Faulted[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// FromFunc runs f in its own goroutine and returns a future settling with
// f's outcome.
func FromFunc[T any](f func() (T, error)) *Future[T] {
	fut := New[T]()
	go func() {
		v, err := f()
		if err != nil {
			fut.Fail(err)
			return
		}
		fut.Complete(v)
	}()
	return fut
}

// Complete settles the future with v. Ignored if already settled.
func (f *Future[T]) Complete(v T) {
	f.settle(v, nil)
}

// Fail settles the future with a fault. Ignored if already settled.
func (f *Future[T]) Fail(err error) {
	var zero T
	f.settle(zero, err)
}

// Cancel settles the future with ErrCanceled. Ignored if already settled.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

func (f *Future[T]) settle(v T, err error) {
	f.once.Do(func() {
		f.value = v
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done, whichever comes
// first, and returns the settled value or fault.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
