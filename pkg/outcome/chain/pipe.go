package chain

import "github.com/ib-77/outcome/pkg/outcome"

// Pipe wraps a raw value in a success and sequences the operations over
// it, each consuming the previous step's payload. The first failure
// short-circuits and passes through untouched.
func Pipe[T any](v T, ops ...func(t T) outcome.Result[T]) outcome.Result[T] {
	return PipeResult(outcome.Success(v), ops...)
}

// PipeResult is Pipe for an input that is already a Result.
func PipeResult[T any](r outcome.Result[T], ops ...func(t T) outcome.Result[T]) outcome.Result[T] {
	for _, op := range ops {
		if r.IsFailure() {
			return r
		}
		r = op(r.Result())
	}
	return r
}
