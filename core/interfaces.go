package core

import (
	"time"

	"github.com/shahzadadil/schedly/job"
)

// PendingQueue defines what the scheduler needs from the pending-entry
// store. Enqueue must be safe for concurrent producers; Drain must atomically
// take the whole backlog so that entries enqueued concurrently are deferred
// to a later pass rather than lost.
type PendingQueue interface {
	Enqueue(e *job.Entry)
	Drain() []*job.Entry
	Len() int
}

// Statistics defines what the scheduler needs from a lifecycle event
// collector. Implementations must be safe for concurrent use and must not
// block: every call happens on the dispatch path.
type Statistics interface {
	// JobScheduled records a newly scheduled logical job.
	JobScheduled(e *job.Entry)

	// JobStarted records the start of one attempt.
	JobStarted(e *job.Entry)

	// JobSucceeded records a successful attempt; the logical job is done.
	JobSucceeded(e *job.Entry, duration time.Duration)

	// JobFailed records a failed attempt.
	JobFailed(e *job.Entry, err error, duration time.Duration)

	// RetryScheduled records the re-enqueue of a failed job.
	RetryScheduled(e *job.Entry, delay time.Duration)

	// JobExhausted records the permanent drop of a job that spent its
	// retry budget.
	JobExhausted(e *job.Entry)
}
