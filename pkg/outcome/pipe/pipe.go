package pipe

import (
	"context"

	"github.com/ev-12/outcome/pkg/outcome"
)

// Chain wraps a Result with a context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T]
}

// Start creates a new chain from a Result.
func Start[T any](ctx context.Context, r outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Ok(v))
}

// Result returns the underlying Result.
func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then composes a function that already returns a Result.
func (c Chain[T]) Then(onOk func(ctx context.Context, t T) outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: outcome.Bind(c.res, func(v T) outcome.Result[T] {
		return onOk(c.ctx, v)
	})}
}

// Try composes a function that returns (T, error), converting a non-nil
// error into a failure.
func (c Chain[T]) Try(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: outcome.Bind(c.res, func(v T) outcome.Result[T] {
		return outcome.TryFrom(try(c.ctx, v))
	})}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onOk func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: outcome.Map(c.res, func(v T) T {
		return onOk(c.ctx, v)
	})}
}

// MapErr transforms the error of a failed chain.
func (c Chain[T]) MapErr(onErr func(ctx context.Context, e outcome.Error) outcome.Error) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: outcome.MapFailure(c.res, func(e outcome.Error) outcome.Error {
		return onErr(c.ctx, e)
	})}
}

// Recover routes a failure back into the success track.
func (c Chain[T]) Recover(onErr func(ctx context.Context, e outcome.Error) outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: outcome.BindFailure(c.res, func(e outcome.Error) outcome.Result[T] {
		return onErr(c.ctx, e)
	})}
}

// Ensure triggers side effects for success or failure without changing the
// result.
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, outcome.Error)) Chain[T] {
	outcome.Tap(c.res,
		func(v T) {
			if onOk != nil {
				onOk(c.ctx, v)
			}
		},
		func(e outcome.Error) {
			if onErr != nil {
				onErr(c.ctx, e)
			}
		})
	return c
}

// Finally collapses the chain to a final value.
func (c Chain[T]) Finally(onOk func(context.Context, T) T, onErr func(context.Context, outcome.Error) T) T {
	return outcome.Match(c.res,
		func(v T) T { return onOk(c.ctx, v) },
		func(e outcome.Error) T { return onErr(c.ctx, e) })
}
