package job

import (
	"context"
	"time"
)

// Func is the function signature for job bodies. The context carries the
// cancellation signal handed over at invocation time; the execution context
// describes the attempt being made. A nil error means success, any non-nil
// error (or a panic) counts as a failed attempt.
type Func func(ctx context.Context, ec *ExecutionContext) error

// ExecutionContext describes one attempt of one logical job. A single
// context is created when the job is first scheduled and is reused across
// retries: Attempt and StartedAt are refreshed before each invocation while
// JobID stays fixed for the lifetime of the logical job.
type ExecutionContext struct {
	// JobID is the stable identity of the logical job, opaque to the
	// scheduler and preserved across retries.
	JobID string

	// JobName is the display name used in logs and statistics.
	JobName string

	// Attempt is the 0-based number of the current attempt.
	Attempt int

	// MaxRetries is the configured retry limit for this job.
	MaxRetries int

	// ScheduledAt is the originally requested due time.
	ScheduledAt time.Time

	// StartedAt is the wall-clock time the current attempt began.
	StartedAt time.Time

	// Values is an open-ended bag for caller-supplied data.
	Values map[string]any
}

// Value returns the caller-supplied value stored under key.
func (ec *ExecutionContext) Value(key string) (any, bool) {
	v, ok := ec.Values[key]
	return v, ok
}

// SetValue stores a caller-supplied value under key.
func (ec *ExecutionContext) SetValue(key string, value any) {
	if ec.Values == nil {
		ec.Values = make(map[string]any)
	}
	ec.Values[key] = value
}
