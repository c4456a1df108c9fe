package pool

import "errors"

var (
	ErrQueueFull = errors.New("executor queue is full")
	ErrStopped   = errors.New("executor has been stopped")
)
