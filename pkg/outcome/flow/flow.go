package flow

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Run fans the input out across workers pumping the same-type stage and
// fans the outcomes back into one channel, closed when all workers stop.
func Run[T any](ctx context.Context, inputCh <-chan outcome.Result[T],
	stage Stage[T, T], workers int) <-chan outcome.Result[T] {
	return RunWith(ctx, inputCh, stage, DrainHandlers[T, T]{}, workers)
}

// Turnout is Run for a type-changing stage.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In],
	stage Stage[In, Out], workers int) <-chan outcome.Result[Out] {
	return TurnoutWith(ctx, inputCh, stage, DrainHandlers[In, Out]{}, workers)
}

// RunWith is Run with drain handlers observing a canceled shutdown.
func RunWith[T any](ctx context.Context, inputCh <-chan outcome.Result[T],
	stage Stage[T, T], handlers DrainHandlers[T, T], workers int) <-chan outcome.Result[T] {
	return TurnoutWith(ctx, inputCh, stage, handlers, workers)
}

// TurnoutWith is Turnout with drain handlers observing a canceled
// shutdown.
func TurnoutWith[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In],
	stage Stage[In, Out], handlers DrainHandlers[In, Out], workers int) <-chan outcome.Result[Out] {

	out := make(chan outcome.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go Pump(ctx, inputCh, out, stage, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// FinallyHandlers fold a stream of Results into plain values.
type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, err error) Out
}

// Finalize folds every Result read from the input channel into a plain
// value via the handlers. The returned channel closes when the input
// closes or ctx is done.
func Finalize[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Match(in,
					func(v In) Out { return handlers.OnSuccess(ctx, v) },
					func(err error) Out { return handlers.OnFailure(ctx, err) })

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}
