package flow

import "context"

type optionKey string

const (
	workerOptionKey optionKey = "worker_options"
	drainOptionKey  optionKey = "drain_options"
)

type workerOptions struct {
	maxCount int
}

type drainOptions struct {
	drainRemaining bool
}

// WithWorkers sets the worker count pipelines read via MaxWorkers.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxCount: maxWorkers})
}

func MaxWorkers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok {
		return options.maxCount
	}
	return defaultMaxWorkers
}

// WithDrainRemaining controls whether inputs left behind by a canceled
// pipeline are drained as failures carrying ctx.Err() or dropped.
func WithDrainRemaining(ctx context.Context, drainRemaining bool) context.Context {
	return context.WithValue(ctx, drainOptionKey, drainOptions{drainRemaining: drainRemaining})
}

func DrainRemaining(ctx context.Context, defaultDrainRemaining bool) bool {
	options, ok := ctx.Value(drainOptionKey).(drainOptions)
	if ok {
		return options.drainRemaining
	}
	return defaultDrainRemaining
}
