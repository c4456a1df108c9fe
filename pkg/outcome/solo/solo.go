package solo

import (
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T any](input T) outcome.Result[T] {
	return outcome.Success(input)
}

func FailWith[T any](err error) outcome.Result[T] {
	return outcome.Fail[T](err)
}

// Map transforms the successful value. A failure passes through with the
// same error value. Panics raised by onSuccess are not caught here.
func Map[In, Out any](input outcome.Result[In],
	onSuccess func(r In) Out) outcome.Result[Out] {

	if input.IsSuccess() {
		return outcome.Success(onSuccess(input.Result()))
	}
	return outcome.FailFrom[In, Out](input)
}

// FlatMap is the monadic bind: the result of onSuccess is returned
// directly, never re-wrapped. onSuccess is not invoked on a failure.
func FlatMap[In, Out any](input outcome.Result[In],
	onSuccess func(r In) outcome.Result[Out]) outcome.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return outcome.FailFrom[In, Out](input)
}

func MapErr[T any](input outcome.Result[T],
	onFailure func(err error) error) outcome.Result[T] {

	if input.IsFailure() {
		return outcome.Fail[T](onFailure(input.Err()))
	}
	return input
}

// Match folds the result into a plain value. Exactly one handler runs.
func Match[In, Out any](input outcome.Result[In],
	onSuccess func(r In) Out,
	onFailure func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}

// Try calls a function returning (Out, error) and converts a non-nil
// error to a failure.
func Try[In, Out any](input outcome.Result[In],
	onTryExecute func(r In) (Out, error)) outcome.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(input.Result())
		if err != nil {
			return outcome.Fail[Out](err)
		}

		return outcome.Success(out)
	}
	return outcome.FailFrom[In, Out](input)
}

func Tee[T any](input outcome.Result[T],
	onSuccess func(r T)) outcome.Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	}

	return input
}

func TeeErr[T any](input outcome.Result[T],
	onFailure func(err error)) outcome.Result[T] {

	if input.IsFailure() {
		onFailure(input.Err())
	}

	return input
}

func Validate[T any](input T,
	validate func(in T) (valid bool, errMsg string)) outcome.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input outcome.Result[T],
	validate func(in T) (valid bool, errMsg string)) outcome.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(input.Result()); isValid {
			return outcome.Success(input.Result())
		} else {
			return outcome.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	input outcome.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(in outcome.Result[T]) outcome.Result[T]) outcome.Result[T] {

	var err error
	return Join(
		input,
		breakOnError,
		func(current outcome.Result[T]) outcome.Result[T] {

			if current.IsFailure() {
				e := outcome.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if outcome.IsNil(err) {
				return current
			}

			return outcome.Fail[T](err)
		},
		inputsF...,
	)
}

func FailOnError[T any](input outcome.Result[T],
	maybeErr func(in T) error) outcome.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(input.Result())
		if err != nil {
			return outcome.Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

func Join[T any](
	input outcome.Result[T],
	breakOnError bool, // exit on first error
	concat func(current outcome.Result[T]) outcome.Result[T],
	inputsF ...func(in outcome.Result[T]) outcome.Result[T]) outcome.Result[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := concat(inputsF[0](input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {

			nextRes := concat(in(finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
