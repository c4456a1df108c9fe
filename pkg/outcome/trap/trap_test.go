package trap

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome/future"
)

func TestTry_NormalReturn(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) {
		return 5 + 5, nil
	})

	if !r.IsSuccess() {
		t.Fatalf("expected success, got error: %v", r.Err())
	}
	if r.Result() != 10 {
		t.Fatalf("expected 10, got %d", r.Result())
	}
}

func TestTry_ZeroValueIsSuccess(t *testing.T) {
	t.Parallel()

	r := Try(func() (*int, error) {
		return nil, nil
	})

	if !r.IsSuccess() {
		t.Fatalf("nil payload must still be a success, got error: %v", r.Err())
	}
	if r.Result() != nil {
		t.Fatalf("expected nil payload, got %v", r.Result())
	}
}

func TestTry_ErrorReturn(t *testing.T) {
	t.Parallel()

	testErr := errors.New("db down")
	r := Try(func() (int, error) {
		return 0, testErr
	})

	if !r.IsFailure() {
		t.Fatalf("expected failure")
	}
	if r.Err() != testErr {
		t.Fatalf("error identity not preserved: got %v", r.Err())
	}
}

func TestTry_PanicWithString(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) {
		panic("boom")
	})

	if !r.IsFailure() {
		t.Fatalf("expected failure")
	}

	var pe *PanicError
	if !errors.As(r.Err(), &pe) {
		t.Fatalf("expected *PanicError, got %T", r.Err())
	}
	if pe.Value != "boom" {
		t.Fatalf("panic payload not preserved: got %v", pe.Value)
	}
}

func TestTry_PanicWithError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	r := Try(func() (int, error) {
		panic(cause)
	})

	if !errors.Is(r.Err(), cause) {
		t.Fatalf("panic error not reachable via errors.Is: %v", r.Err())
	}

	var pe *PanicError
	if !errors.As(r.Err(), &pe) {
		t.Fatalf("expected *PanicError, got %T", r.Err())
	}
	if pe.Value != cause {
		t.Fatalf("panic payload not preserved: got %v", pe.Value)
	}
}

func TestTry_FutureReturnNotAwaited(t *testing.T) {
	t.Parallel()

	inner := future.New[int]()
	r := Try(func() (*future.Future[int], error) {
		return inner, nil
	})

	if !r.IsSuccess() {
		t.Fatalf("expected success, got error: %v", r.Err())
	}
	if r.Result() != inner {
		t.Fatalf("future payload must be returned as-is")
	}

	// a later failure inside the future is invisible to Try
	inner.Fail(errors.New("later"))
	if !r.IsSuccess() {
		t.Fatalf("result mutated after inner future failed")
	}
}

func TestTryVal(t *testing.T) {
	t.Parallel()

	r := TryVal(func() int { return 7 })
	if !r.IsSuccess() || r.Result() != 7 {
		t.Fatalf("expected success(7), got %v", r)
	}

	r = TryVal(func() int { panic("boom") })
	if !r.IsFailure() {
		t.Fatalf("expected failure")
	}
	var pe *PanicError
	if !errors.As(r.Err(), &pe) || pe.Value != "boom" {
		t.Fatalf("panic payload not preserved: %v", r.Err())
	}
}

func TestGo_ResolvesAfterSettlement(t *testing.T) {
	t.Parallel()

	f := Go(func() (int, error) {
		return 21 * 2, nil
	})

	r := f.Await(context.Background())
	if !r.IsSuccess() || r.Result() != 42 {
		t.Fatalf("expected success(42), got %v", r)
	}
}

func TestGo_ErrorReturn(t *testing.T) {
	t.Parallel()

	testErr := errors.New("async fail")
	f := Go(func() (int, error) {
		return 0, testErr
	})

	r := f.Await(context.Background())
	if !r.IsFailure() || r.Err() != testErr {
		t.Fatalf("expected failure(%v), got %v", testErr, r)
	}
}

func TestGo_SynchronousPanicResolvesFailure(t *testing.T) {
	t.Parallel()

	f := Go(func() (int, error) {
		// panics before any blocking point; must settle the future,
		// not crash the process
		panic("early")
	})

	r := f.Await(context.Background())
	if !r.IsFailure() {
		t.Fatalf("expected failure")
	}
	var pe *PanicError
	if !errors.As(r.Err(), &pe) || pe.Value != "early" {
		t.Fatalf("panic payload not preserved: %v", r.Err())
	}
}

func TestGoVal(t *testing.T) {
	t.Parallel()

	r := GoVal(func() string { return "done" }).Await(context.Background())
	if !r.IsSuccess() || r.Result() != "done" {
		t.Fatalf("expected success(done), got %v", r)
	}
}

func TestTryWith_FinallyRunsOnce(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		finallyCalls := 0
		r := TryWith(func() (int, error) {
			return 1, nil
		}, Handlers{Finally: func() { finallyCalls++ }})

		if !r.IsSuccess() {
			t.Fatalf("expected success, got %v", r.Err())
		}
		if finallyCalls != 1 {
			t.Fatalf("expected one Finally call, got %d", finallyCalls)
		}
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		finallyCalls := 0
		testErr := errors.New("e")
		r := TryWith(func() (int, error) {
			return 0, testErr
		}, Handlers{Finally: func() { finallyCalls++ }})

		if !r.IsFailure() || r.Err() != testErr {
			t.Fatalf("expected failure(%v), got %v", testErr, r)
		}
		if finallyCalls != 1 {
			t.Fatalf("expected one Finally call, got %d", finallyCalls)
		}
	})

	t.Run("panic", func(t *testing.T) {
		t.Parallel()

		finallyCalls := 0
		r := TryWith(func() (int, error) {
			panic("p")
		}, Handlers{Finally: func() { finallyCalls++ }})

		if !r.IsFailure() {
			t.Fatalf("expected failure")
		}
		if finallyCalls != 1 {
			t.Fatalf("expected one Finally call, got %d", finallyCalls)
		}
	})
}

func TestTryWith_OnErrorObservesBeforeFailure(t *testing.T) {
	t.Parallel()

	testErr := errors.New("seen")
	var observed error
	r := TryWith(func() (int, error) {
		return 0, testErr
	}, Handlers{OnError: func(err error) { observed = err }})

	if observed != testErr {
		t.Fatalf("OnError did not observe the error: %v", observed)
	}
	if r.Err() != testErr {
		t.Fatalf("failure does not carry the original error: %v", r.Err())
	}
}

func TestTryWith_RethrowRunsFinallyFirst(t *testing.T) {
	t.Parallel()

	finallyRan := false
	defer func() {
		v := recover()
		if v != "rethrown" {
			t.Fatalf("expected original panic value, got %v", v)
		}
		if !finallyRan {
			t.Fatalf("Finally did not run before the panic reached the caller")
		}
	}()

	TryWith(func() (int, error) {
		panic("rethrown")
	}, Handlers{
		Rethrow: true,
		Finally: func() { finallyRan = true },
	})

	t.Fatalf("panic did not propagate")
}

func TestTryWith_RethrowDoesNotAffectErrorReturns(t *testing.T) {
	t.Parallel()

	testErr := errors.New("plain")
	r := TryWith(func() (int, error) {
		return 0, testErr
	}, Handlers{Rethrow: true})

	if !r.IsFailure() || r.Err() != testErr {
		t.Fatalf("error return must still become a failure, got %v", r)
	}
}

func TestGoWith(t *testing.T) {
	t.Parallel()

	finallyCalls := 0
	var observed error
	f := GoWith(func() (int, error) {
		panic("async panic")
	}, Handlers{
		Rethrow: true, // ignored on the async side
		OnError: func(err error) { observed = err },
		Finally: func() { finallyCalls++ },
	})

	r := f.Await(context.Background())
	if !r.IsFailure() {
		t.Fatalf("expected failure")
	}
	var pe *PanicError
	if !errors.As(r.Err(), &pe) || pe.Value != "async panic" {
		t.Fatalf("panic payload not preserved: %v", r.Err())
	}
	if observed == nil || finallyCalls != 1 {
		t.Fatalf("handlers not applied: observed=%v finally=%d", observed, finallyCalls)
	}
}
