package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps a Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T]
}

// Start creates a new chain from a Result
func Start[T any](ctx context.Context, r outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

// Result returns the underlying Result
func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then composes functions that already return Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.FlatMap(c.res,
		func(v T) outcome.Result[T] {
			return onSuccess(c.ctx, v)
		})}
}

// ThenTry composes functions that return (T, error)
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.res,
		func(v T) (T, error) {
			return try(c.ctx, v)
		})}
}

// Map transforms the successful value without changing the type
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.res,
		func(v T) T {
			return onSuccess(c.ctx, v)
		})}
}

// Ensure performs side effects without changing the result
func (c Chain[T]) Ensure(onSuccess func(ctx context.Context, t T),
	onFailure func(ctx context.Context, err error)) Chain[T] {

	res := c.res
	if onSuccess != nil {
		res = solo.Tee(res, func(v T) { onSuccess(c.ctx, v) })
	}
	if onFailure != nil {
		res = solo.TeeErr(res, func(err error) { onFailure(c.ctx, err) })
	}
	return Chain[T]{ctx: c.ctx, res: res}
}

// Or keeps the current chain if it succeeded, otherwise the alternative
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// And keeps the first failure, otherwise the required chain's result
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Finally collapses the chain into a final value of the same type
func (c Chain[T]) Finally(onSuccess func(ctx context.Context, t T) T,
	onFailure func(ctx context.Context, err error) T) T {

	return solo.Match(c.res,
		func(v T) T { return onSuccess(c.ctx, v) },
		func(err error) T { return onFailure(c.ctx, err) })
}

// Then chains a function that returns Result[U]. The free-function
// forms exist because Go methods cannot introduce type parameters.
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) outcome.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.FlatMap(c.res,
		func(v T) outcome.Result[U] {
			return onSuccess(c.ctx, v)
		})}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Try(c.res,
		func(v T) (U, error) {
			return try(c.ctx, v)
		})}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.res,
		func(v T) U {
			return onSuccess(c.ctx, v)
		})}
}

// Finally collapses the chain into a final value via handlers
func Finally[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U,
	onFailure func(ctx context.Context, err error) U) U {

	return solo.Match(c.res,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(err error) U { return onFailure(c.ctx, err) })
}
