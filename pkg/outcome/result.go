package outcome

import (
	"errors"
	"fmt"
)

// ErrNilFailure replaces a nil error passed to Fail so that a failure
// result always carries a non-nil error.
var ErrNilFailure = errors.New("failure constructed with nil error")

// Result holds either a successful value of type T or a non-nil error,
// never both. The zero value is not a valid Result; use Success, Fail
// or From.
type Result[T any] struct {
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

// From lifts Go's native (value, error) pair into a Result.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// FailFrom carries a failure across a type change. The payload of a
// successful input does not cross; a success input yields a failure
// carrying ErrNilFailure.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Fail[Out](from.err)
}

func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Get unpacks the Result back into Go's native pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

func (r Result[T]) UnwrapOrElse(fn func(err error) T) T {
	if r.isSuccess {
		return r.value
	}
	return fn(r.err)
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return fmt.Sprintf("failure(%v)", r.err)
}
