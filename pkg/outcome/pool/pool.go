package pool

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/future"
	"github.com/ib-77/outcome/pkg/outcome/trap"
)

// RunFunction executes one task. It runs on an executor worker with the
// task id available via TaskIDFromContext.
type RunFunction[T, R any] func(ctx context.Context, task T) (R, error)

type taskFuture[T, R any] struct {
	ctx    context.Context
	id     string
	task   T
	future *future.Future[R]
}

type submitStrategy[T, R any] func(taskChan chan<- taskFuture[T, R], tf taskFuture[T, R]) error

// Executor runs tasks on a fixed pool of workers, each submission
// settling its own future. Run invocations are panic-trapped, so a
// poisoned task fails only its own future and never kills a worker.
type Executor[T, R any] struct {
	isStopping uint32

	run      RunFunction[T, R]
	limiter  *rate.Limiter
	taskChan chan taskFuture[T, R]

	submit submitStrategy[T, R]

	waitSend *sync.WaitGroup
	waitStop *sync.WaitGroup
	stopOnce *sync.Once
}

// New creates an Executor with opts.Workers goroutines. It panics when
// opts is invalid.
func New[T, R any](opts Opts, run RunFunction[T, R]) *Executor[T, R] {
	opts.validate()

	e := &Executor[T, R]{
		run:      run,
		taskChan: make(chan taskFuture[T, R], opts.QueueDepth),
		waitSend: &sync.WaitGroup{},
		waitStop: &sync.WaitGroup{},
		stopOnce: &sync.Once{},
	}

	if opts.Limit > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(opts.Limit), opts.Burst)
	}

	if opts.WhenFull == BlockWhenFull {
		e.submit = submitBlockWhenFull[T, R]
	} else {
		e.submit = submitErrorWhenFull[T, R]
	}

	for i := 0; i < opts.Workers; i++ {
		e.waitStop.Add(1)
		go e.worker()
	}

	return e
}

func (e *Executor[T, R]) worker() {
	defer e.waitStop.Done()

	for tf := range e.taskChan {
		if e.limiter != nil {
			if err := e.limiter.Wait(tf.ctx); err != nil {
				tf.future.Fail(err)
				continue
			}
		}

		ctx := withTaskID(tf.ctx, tf.id)
		task := tf.task
		tf.future.Resolve(trap.Try(func() (R, error) {
			return e.run(ctx, task)
		}))
	}
}

// Submit queues the task and blocks until it settles or ctx is done.
func (e *Executor[T, R]) Submit(ctx context.Context, task T) outcome.Result[R] {
	return e.SubmitF(ctx, task).Await(ctx)
}

// SubmitF queues the task and returns the future that will settle with
// its outcome. Submission problems (ErrStopped, ErrQueueFull, a context
// canceled while blocked on a full queue) surface as an already-failed
// future.
func (e *Executor[T, R]) SubmitF(ctx context.Context, task T) *future.Future[R] {
	e.waitSend.Add(1)
	defer e.waitSend.Done()

	if atomic.LoadUint32(&e.isStopping) == 1 {
		return future.FailWith[R](ErrStopped)
	}

	tf := taskFuture[T, R]{
		ctx:    ctx,
		id:     newTaskID(),
		task:   task,
		future: future.New[R](),
	}

	if err := e.submit(e.taskChan, tf); err != nil {
		return future.FailWith[R](err)
	}

	return tf.future
}

func submitBlockWhenFull[T, R any](taskChan chan<- taskFuture[T, R], tf taskFuture[T, R]) error {
	select {
	case taskChan <- tf:
		return nil
	case <-tf.ctx.Done():
		return tf.ctx.Err()
	}
}

func submitErrorWhenFull[T, R any](taskChan chan<- taskFuture[T, R], tf taskFuture[T, R]) error {
	select {
	case taskChan <- tf:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop drains queued tasks and stops the workers. Safe to call more
// than once; later submissions fail with ErrStopped.
func (e *Executor[T, R]) Stop() {
	e.stopOnce.Do(func() {
		atomic.StoreUint32(&e.isStopping, 1)
		e.waitSend.Wait()
		close(e.taskChan)
	})

	e.waitStop.Wait()
}
