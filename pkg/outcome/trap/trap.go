package trap

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/future"
)

// Try runs fn and converts both of Go's failure channels into a Result:
// a non-nil error becomes a failure carrying that exact error, a panic
// becomes a failure carrying a *PanicError around the recovered value.
// A normal return is a success even when the value is a zero value.
//
// Try always returns synchronously. If fn returns a *future.Future, the
// future itself is the success payload; Try does not await it and does
// not observe failures that happen inside it later.
func Try[T any](fn func() (T, error)) (r outcome.Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			r = outcome.Fail[T](&PanicError{Value: v})
		}
	}()

	v, err := fn()
	if err != nil {
		return outcome.Fail[T](err)
	}
	return outcome.Success(v)
}

// TryVal is Try for operations whose only failure mode is panicking.
func TryVal[T any](fn func() T) outcome.Result[T] {
	return Try(func() (T, error) {
		return fn(), nil
	})
}

// Go runs fn on its own goroutine and returns a future that settles to
// the same Result Try would have produced. The returned handle is always
// a future, even when fn completes immediately; a panic raised before
// fn's first blocking point settles the future as a failure instead of
// escaping.
func Go[T any](fn func() (T, error)) *future.Future[T] {
	f := future.New[T]()

	go func() {
		f.Resolve(Try(fn))
	}()

	return f
}

// GoVal is Go for operations whose only failure mode is panicking.
func GoVal[T any](fn func() T) *future.Future[T] {
	return Go(func() (T, error) {
		return fn(), nil
	})
}

// Handlers tunes TryWith and GoWith.
type Handlers struct {
	// OnError observes the error before the failure Result is built.
	OnError func(err error)
	// Rethrow lets a trapped panic propagate unchanged instead of
	// becoming a failure. Error returns are unaffected: an error is
	// already a value and Fail(err) is its propagation.
	Rethrow bool
	// Finally runs exactly once after the operation settles, on
	// success, failure and rethrow alike. On rethrow it runs before
	// the panic continues to the caller.
	Finally func()
}

// TryWith is Try with side-effect hooks and an opt-in rethrow policy.
func TryWith[T any](fn func() (T, error), h Handlers) (r outcome.Result[T]) {
	if h.Finally != nil {
		defer h.Finally()
	}

	defer func() {
		if v := recover(); v != nil {
			if h.Rethrow {
				panic(v)
			}

			pe := &PanicError{Value: v}
			if h.OnError != nil {
				h.OnError(pe)
			}
			r = outcome.Fail[T](pe)
		}
	}()

	v, err := fn()
	if err != nil {
		if h.OnError != nil {
			h.OnError(err)
		}
		return outcome.Fail[T](err)
	}
	return outcome.Success(v)
}

// GoWith is the asynchronous sibling of TryWith. Rethrow is ignored: a
// goroutine has no caller to rethrow into, so a trapped panic always
// settles the future as a failure.
func GoWith[T any](fn func() (T, error), h Handlers) *future.Future[T] {
	h.Rethrow = false
	f := future.New[T]()

	go func() {
		f.Resolve(TryWith(fn, h))
	}()

	return f
}
