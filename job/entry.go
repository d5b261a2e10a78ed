// Package job defines the types shared between the scheduler core and its
// collaborators: the job body signature, the per-job execution context, and
// the queued entry that pairs a body with its due time and retry state.
package job

import (
	"time"
)

// Entry is one queued, due-time-stamped representation of a logical job at a
// specific attempt. Retries of the same logical job produce new entries that
// share the ID and the execution context of the original.
type Entry struct {
	// ID is the stable identity of the logical job.
	ID string

	// Name is the display name used in logs and statistics.
	Name string

	// Body is the job function to invoke.
	Body Func

	// DueAt is the time at which this entry becomes eligible for dispatch.
	DueAt time.Time

	// MaxRetries bounds how many times a failed body is re-run. A job is
	// allowed MaxRetries+1 attempts in total.
	MaxRetries int

	// Attempt is the 0-based attempt this entry represents.
	Attempt int

	// Context is the execution context owned by the logical job. It is
	// shared, not copied, when a retry entry is derived.
	Context *ExecutionContext
}

// NewEntry creates the first entry of a new logical job together with its
// owned execution context.
func NewEntry(id, name string, body Func, dueAt time.Time, maxRetries int) *Entry {
	return &Entry{
		ID:         id,
		Name:       name,
		Body:       body,
		DueAt:      dueAt,
		MaxRetries: maxRetries,
		Context: &ExecutionContext{
			JobID:       id,
			JobName:     name,
			MaxRetries:  maxRetries,
			ScheduledAt: dueAt,
			Values:      make(map[string]any),
		},
	}
}

// Ready reports whether the entry's due time has elapsed at now.
func (e *Entry) Ready(now time.Time) bool {
	return !now.Before(e.DueAt)
}

// Exhausted reports whether the entry is past its final allowed attempt.
// Attempts run from 0 through MaxRetries inclusive, so the outcome handler
// never enqueues an exhausted entry; the predicate guards against hand-built
// ones.
func (e *Entry) Exhausted() bool {
	return e.Attempt > e.MaxRetries
}

// NextRetry derives the entry for the next attempt of the same logical job.
// The ID and the execution context are carried over unchanged so identity is
// preserved across retries.
func (e *Entry) NextRetry(dueAt time.Time) *Entry {
	return &Entry{
		ID:         e.ID,
		Name:       e.Name,
		Body:       e.Body,
		DueAt:      dueAt,
		MaxRetries: e.MaxRetries,
		Attempt:    e.Attempt + 1,
		Context:    e.Context,
	}
}
