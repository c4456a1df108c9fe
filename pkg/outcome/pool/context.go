package pool

import (
	"context"

	"github.com/google/uuid"
)

type taskIDKey struct{}

func newTaskID() string {
	return uuid.NewString()
}

func withTaskID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, taskIDKey{}, id)
}

// TaskIDFromContext attempts to retrieve a task id string from the
// current context. The task id is assigned on submission and added to
// the context by the Executor before invoking the run function. This id
// can be useful for logging and tracing.
func TaskIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(taskIDKey{}).(string)
	return v, ok
}
