package flow

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// DrainHandlers hook into a Pump shutting down because ctx was
// canceled. OnUnprocessed sees the input that was read but not pushed
// through the stage; OnStop sees the rest of the input channel.
type DrainHandlers[In, Out any] struct {
	OnStop        func(ctx context.Context, inputCh <-chan outcome.Result[In], outCh chan<- outcome.Result[Out])
	OnUnprocessed func(ctx context.Context, unprocessed outcome.Result[In], outCh chan<- outcome.Result[Out])
}

// Pump drives inputs through the stage until the input channel closes
// or ctx is done, writing every outcome to outCh. One Pump is one
// worker; fan out by starting several on the same channels.
func Pump[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In], outCh chan<- outcome.Result[Out],
	stage Stage[In, Out], handlers DrainHandlers[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnStop != nil {
				handlers.OnStop(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnUnprocessed != nil {
					handlers.OnUnprocessed(ctx, in, outCh)
				}
				if handlers.OnStop != nil {
					handlers.OnStop(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-stage(ctx, in):
				if !running {
					// a canceled stage closes without delivering; the
					// input it swallowed is still unprocessed
					if ctx.Err() != nil {
						if handlers.OnUnprocessed != nil {
							handlers.OnUnprocessed(ctx, in, outCh)
						}
						if handlers.OnStop != nil {
							handlers.OnStop(ctx, inputCh, outCh)
						}
					}
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnStop != nil {
						handlers.OnStop(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
				}
			}
		}
	}
}

// FailRemaining drains the rest of the input channel into failures
// carrying ctx.Err(), honoring the DrainRemaining option. Suitable as
// an OnStop handler when the collector keeps reading after the cancel.
func FailRemaining[In, Out any](ctx context.Context,
	inputCh <-chan outcome.Result[In], outCh chan<- outcome.Result[Out]) {

	if !DrainRemaining(ctx, true) {
		return
	}

	for range inputCh {
		outCh <- outcome.Fail[Out](ctx.Err())
	}
}

// FailUnprocessed reports one read-but-unprocessed input as a failure
// carrying ctx.Err(), honoring the DrainRemaining option.
func FailUnprocessed[In, Out any](ctx context.Context,
	in outcome.Result[In], outCh chan<- outcome.Result[Out]) {

	if !DrainRemaining(ctx, true) {
		return
	}

	if in.IsFailure() {
		outCh <- outcome.FailFrom[In, Out](in)
	} else {
		outCh <- outcome.Fail[Out](ctx.Err())
	}
}
