package pool

import (
	"time"

	"golang.org/x/time/rate"
)

// FullQueueStrategy is the behavior when the task queue is full.
type FullQueueStrategy int

const (
	// BlockWhenFull exerts back pressure by blocking the submitter
	// until queue space frees up or its context is done.
	BlockWhenFull FullQueueStrategy = iota
	// ErrorWhenFull immediately fails the submission with ErrQueueFull.
	ErrorWhenFull
)

// A rate limit expressed as N tasks per second
type Limit = rate.Limit

// Every converts the provided duration into a number of tasks per second,
// for instance Every(100 * time.Millisecond) yields 10 tasks per second
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// Opts configures an Executor via New.
type Opts struct {
	// Workers is the number of goroutines running tasks.
	Workers int
	// QueueDepth controls the number of outstanding submitted tasks.
	QueueDepth int
	// WhenFull determines the behavior when QueueDepth is exceeded.
	// By default the executor blocks the submitter.
	WhenFull FullQueueStrategy
	// Limit throttles task starts to this many per second. Zero means
	// no rate limiting.
	Limit Limit
	// Burst is the token bucket size; must be 1 or greater when Limit
	// is set.
	Burst int
}

func (o Opts) validate() {
	if o.Workers < 1 {
		panic("executor workers must be 1 or greater")
	}

	if o.QueueDepth < 0 {
		panic("executor queue depth must be 0 or greater")
	}

	if o.Limit < 0 {
		panic("executor rate limit must be 0 or greater")
	}

	if o.Limit > 0 && o.Burst < 1 {
		panic("executor burst must be 1 or greater when rate limited")
	}
}
