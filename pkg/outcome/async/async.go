package async

import (
	"context"

	"github.com/ev-12/outcome/pkg/outcome"
	"github.com/ev-12/outcome/pkg/outcome/future"
)

// Pending is a deferred computation whose eventual resolved value is a
// Result[T]. It introduces no state of its own beyond the future.
type Pending[T any] = *future.Future[outcome.Result[T]]

// Lift wraps an already-known Result into a resolved Pending.
func Lift[T any](r outcome.Result[T]) Pending[T] {
	return future.Resolved(r)
}

// await blocks on f without a deadline; cancellation is the antecedent's
// business, not this layer's.
func await[T any](f *future.Future[T]) (T, error) {
	return f.Await(context.Background())
}

// MapFuture transforms the success value of the antecedent with a deferred
// continuation. A Failure passes through untouched without invoking f.
func MapFuture[T, U any](ant Pending[T], f func(T) *future.Future[U]) Pending[U] {
	out := future.New[outcome.Result[U]]()
	go func() {
		r, err := await(ant)
		if err != nil {
			out.Fail(err)
			return
		}
		ok, v, e := r.Deconstruct()
		if !ok {
			out.Complete(outcome.Failure[U](e))
			return
		}
		u, err := await(f(v))
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(outcome.Ok(u))
	}()
	return out
}

// Map is MapFuture with an immediate continuation.
func Map[T, U any](ant Pending[T], f func(T) U) Pending[U] {
	return MapFuture(ant, func(v T) *future.Future[U] {
		return future.Resolved(f(v))
	})
}

// MapFailureFuture transforms the error of the antecedent with a deferred
// continuation. An Ok passes through untouched without invoking g.
func MapFailureFuture[T any](ant Pending[T], g func(outcome.Error) *future.Future[outcome.Error]) Pending[T] {
	out := future.New[outcome.Result[T]]()
	go func() {
		r, err := await(ant)
		if err != nil {
			out.Fail(err)
			return
		}
		ok, _, e := r.Deconstruct()
		if ok {
			out.Complete(r)
			return
		}
		e2, err := await(g(e))
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(outcome.Failure[T](e2))
	}()
	return out
}

// MapFailure is MapFailureFuture with an immediate continuation.
func MapFailure[T any](ant Pending[T], g func(outcome.Error) outcome.Error) Pending[T] {
	return MapFailureFuture(ant, func(e outcome.Error) *future.Future[outcome.Error] {
		return future.Resolved(g(e))
	})
}

// BindFuture switches the success value of the antecedent to a new deferred
// Result, flattened. A Failure short-circuits without invoking f.
func BindFuture[T, U any](ant Pending[T], f func(T) Pending[U]) Pending[U] {
	out := future.New[outcome.Result[U]]()
	go func() {
		r, err := await(ant)
		if err != nil {
			out.Fail(err)
			return
		}
		ok, v, e := r.Deconstruct()
		if !ok {
			out.Complete(outcome.Failure[U](e))
			return
		}
		r2, err := await(f(v))
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(r2)
	}()
	return out
}

// Bind is BindFuture with an immediate continuation.
func Bind[T, U any](ant Pending[T], f func(T) outcome.Result[U]) Pending[U] {
	return BindFuture(ant, func(v T) Pending[U] {
		return Lift(f(v))
	})
}

// BindFailureFuture recovers a Failure through a deferred continuation that
// may produce Ok again. An Ok antecedent passes through without invoking g.
func BindFailureFuture[T any](ant Pending[T], g func(outcome.Error) Pending[T]) Pending[T] {
	out := future.New[outcome.Result[T]]()
	go func() {
		r, err := await(ant)
		if err != nil {
			out.Fail(err)
			return
		}
		ok, _, e := r.Deconstruct()
		if ok {
			out.Complete(r)
			return
		}
		r2, err := await(g(e))
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(r2)
	}()
	return out
}

// BindFailure is BindFailureFuture with an immediate continuation.
func BindFailure[T any](ant Pending[T], g func(outcome.Error) outcome.Result[T]) Pending[T] {
	return BindFailureFuture(ant, func(e outcome.Error) Pending[T] {
		return Lift(g(e))
	})
}

// MatchFuture is the sink: it awaits the antecedent, runs exactly one of the
// two deferred continuations and resolves to that continuation's value, which
// is no longer a Result.
func MatchFuture[T, R any](ant Pending[T], onOk func(T) *future.Future[R], onFailure func(outcome.Error) *future.Future[R]) *future.Future[R] {
	out := future.New[R]()
	go func() {
		r, err := await(ant)
		if err != nil {
			out.Fail(err)
			return
		}
		ok, v, e := r.Deconstruct()
		var branch *future.Future[R]
		if ok {
			branch = onOk(v)
		} else {
			branch = onFailure(e)
		}
		res, err := await(branch)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(res)
	}()
	return out
}

// Match is MatchFuture with immediate continuations.
func Match[T, R any](ant Pending[T], onOk func(T) R, onFailure func(outcome.Error) R) *future.Future[R] {
	return MatchFuture(ant,
		func(v T) *future.Future[R] { return future.Resolved(onOk(v)) },
		func(e outcome.Error) *future.Future[R] { return future.Resolved(onFailure(e)) })
}

// TapFuture runs exactly one of the two deferred observation callbacks,
// ignores its resolved value and resolves to the original, unmodified
// antecedent Result. A fault of the callback's future faults the composition.
func TapFuture[T, A, B any](ant Pending[T], onOk func(T) *future.Future[A], onFailure func(outcome.Error) *future.Future[B]) Pending[T] {
	out := future.New[outcome.Result[T]]()
	go func() {
		r, err := await(ant)
		if err != nil {
			out.Fail(err)
			return
		}
		ok, v, e := r.Deconstruct()
		if ok {
			if _, err := await(onOk(v)); err != nil {
				out.Fail(err)
				return
			}
		} else {
			if _, err := await(onFailure(e)); err != nil {
				out.Fail(err)
				return
			}
		}
		out.Complete(r)
	}()
	return out
}

// Tap is TapFuture with immediate callbacks.
func Tap[T any](ant Pending[T], onOk func(T), onFailure func(outcome.Error)) Pending[T] {
	return TapFuture(ant,
		func(v T) *future.Future[struct{}] {
			if onOk != nil {
				onOk(v)
			}
			return future.Resolved(struct{}{})
		},
		func(e outcome.Error) *future.Future[struct{}] {
			if onFailure != nil {
				onFailure(e)
			}
			return future.Resolved(struct{}{})
		})
}
