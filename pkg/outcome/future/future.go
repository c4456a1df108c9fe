package future

import (
	"context"
	"sync/atomic"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Future represents an asynchronous computation that settles exactly
// once to a Result[T]. The first settlement wins and all later ones are
// silently ignored. A settled future can be awaited by any number of
// goroutines and they all observe the same Result.
type Future[T any] struct {
	isSettled uint32
	settled   chan struct{}

	result outcome.Result[T]
}

// New creates an unsettled future. It must be settled manually by
// calling Succeed, Fail or Resolve.
func New[T any]() *Future[T] {
	return &Future[T]{
		settled: make(chan struct{}),
	}
}

// Of returns a future already settled to Success(v).
func Of[T any](v T) *Future[T] {
	f := New[T]()
	f.Succeed(v)
	return f
}

// FailWith returns a future already settled to a failure carrying err.
func FailWith[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// FromFunc runs fn on its own goroutine and settles the returned future
// with its (value, error) pair. Panics are not trapped here; see
// trap.Go for that.
func FromFunc[T any](fn func() (T, error)) *Future[T] {
	f := New[T]()

	go func() {
		f.Resolve(outcome.From(fn()))
	}()

	return f
}

// Succeed settles this future with Success(v). Ignored if already settled.
func (f *Future[T]) Succeed(v T) {
	f.Resolve(outcome.Success(v))
}

// Fail settles this future with a failure carrying err. Ignored if
// already settled.
func (f *Future[T]) Fail(err error) {
	f.Resolve(outcome.Fail[T](err))
}

// Resolve settles this future with r. Ignored if already settled.
func (f *Future[T]) Resolve(r outcome.Result[T]) {
	if atomic.CompareAndSwapUint32(&f.isSettled, 0, 1) {
		f.result = r
		close(f.settled)
	}
}

// Await blocks until the future settles or ctx is done. Cancellation of
// the wait yields a failure carrying ctx.Err(); the underlying
// operation is not affected and the future may still settle later.
func (f *Future[T]) Await(ctx context.Context) outcome.Result[T] {
	select {
	case <-f.settled:
		return f.result
	case <-ctx.Done():
		return outcome.Fail[T](ctx.Err())
	}
}

// Get awaits the future and unpacks the Result into Go's native pair.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	return f.Await(ctx).Get()
}

// AwaitAll waits for all of the provided futures and returns a Result
// for each at the corresponding index. If ctx is canceled the
// cancellation error is returned by AwaitAll itself.
func AwaitAll[T any](ctx context.Context, fs []*Future[T]) ([]outcome.Result[T], error) {
	res := make([]outcome.Result[T], 0, len(fs))

	for _, f := range fs {
		res = append(res, f.Await(ctx))
		// check for the error at the end of the loop to avoid racing a
		// cancellation while awaiting the last future in the list
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}
