// Package noop provides a statistics collector that discards every event.
// It is the default when no collector is injected.
package noop

import (
	"time"

	"github.com/shahzadadil/schedly/job"
)

// Statistics implements the core Statistics interface with no-op operations
type Statistics struct{}

// New creates a new no-op statistics collector
func New() *Statistics {
	return &Statistics{}
}

// JobScheduled records a newly scheduled job (no-op)
func (s *Statistics) JobScheduled(e *job.Entry) {}

// JobStarted records the start of an attempt (no-op)
func (s *Statistics) JobStarted(e *job.Entry) {}

// JobSucceeded records a successful attempt (no-op)
func (s *Statistics) JobSucceeded(e *job.Entry, duration time.Duration) {}

// JobFailed records a failed attempt (no-op)
func (s *Statistics) JobFailed(e *job.Entry, err error, duration time.Duration) {}

// RetryScheduled records a re-enqueued retry (no-op)
func (s *Statistics) RetryScheduled(e *job.Entry, delay time.Duration) {}

// JobExhausted records a permanently dropped job (no-op)
func (s *Statistics) JobExhausted(e *job.Entry) {}
