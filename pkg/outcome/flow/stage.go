package flow

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Stage processes one Result and delivers the outcome on a channel that
// is closed after at most one value. A canceled ctx may close the
// channel without delivering anything.
type Stage[In, Out any] func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out]

// lift turns a plain Result transformation into a Stage.
func lift[In, Out any](apply func(ctx context.Context, input outcome.Result[In]) outcome.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out] {
		out := make(chan outcome.Result[Out])

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}

			select {
			case out <- apply(ctx, input):
			case <-ctx.Done():
			}
		}()

		return out
	}
}

func MapStage[In, Out any](onSuccess func(ctx context.Context, r In) Out) Stage[In, Out] {
	return lift(func(ctx context.Context, input outcome.Result[In]) outcome.Result[Out] {
		return solo.Map(input, func(v In) Out {
			return onSuccess(ctx, v)
		})
	})
}

func FlatMapStage[In, Out any](onSuccess func(ctx context.Context, r In) outcome.Result[Out]) Stage[In, Out] {
	return lift(func(ctx context.Context, input outcome.Result[In]) outcome.Result[Out] {
		return solo.FlatMap(input, func(v In) outcome.Result[Out] {
			return onSuccess(ctx, v)
		})
	})
}

func TryStage[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Stage[In, Out] {
	return lift(func(ctx context.Context, input outcome.Result[In]) outcome.Result[Out] {
		return solo.Try(input, func(v In) (Out, error) {
			return onTryExecute(ctx, v)
		})
	})
}

func TeeStage[T any](sideEffect func(ctx context.Context, r T)) Stage[T, T] {
	return lift(func(ctx context.Context, input outcome.Result[T]) outcome.Result[T] {
		return solo.Tee(input, func(v T) {
			sideEffect(ctx, v)
		})
	})
}

func ValidateStage[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Stage[T, T] {
	return lift(func(ctx context.Context, input outcome.Result[T]) outcome.Result[T] {
		return solo.AndValidate(input, func(v T) (bool, string) {
			return validate(ctx, v)
		})
	})
}
