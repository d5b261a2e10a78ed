package core

import (
	"context"
	"fmt"
	"time"

	"github.com/shahzadadil/schedly/errors"
	"github.com/shahzadadil/schedly/job"
)

// execute runs one attempt under a concurrency permit. It runs on its own
// goroutine, so when the permit gate is full the attempt waits in line here
// rather than stalling the dispatch tick. The permit is released on every
// exit path.
func (s *Scheduler) execute(e *job.Entry) {
	if err := s.sem.Acquire(s.ctx, 1); err != nil {
		// Shutdown won the race before a permit freed up.
		s.logger.Debug("permit wait abandoned", "job_id", e.ID, "name", e.Name)
		return
	}
	defer s.sem.Release(1)

	start := s.now()
	e.Context.Attempt = e.Attempt
	e.Context.StartedAt = start

	s.stats.JobStarted(e)
	s.logger.Debug("job started", "job_id", e.ID, "name", e.Name, "attempt", e.Attempt)

	if err := s.invoke(e); err != nil {
		s.handleFailure(e, err, s.now().Sub(start))
		return
	}

	s.stats.JobSucceeded(e, s.now().Sub(start))
	s.logger.Debug("job succeeded", "job_id", e.ID, "name", e.Name, "attempt", e.Attempt)
}

// invoke runs the job body with panic recovery. The body receives a context
// that survives scheduler shutdown: closing the scheduler stops future
// dispatch but never interrupts an in-flight attempt.
func (s *Scheduler) invoke(e *job.Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewJobError(e.ID, e.Name, e.Attempt, fmt.Errorf("panic: %v", r))
		}
	}()

	if execErr := e.Body(context.WithoutCancel(s.ctx), e.Context); execErr != nil {
		return errors.NewJobError(e.ID, e.Name, e.Attempt, execErr)
	}

	return nil
}

// handleFailure re-enqueues the job with backoff while retries remain and
// drops it permanently once the budget is spent. Either way the failure is
// absorbed here; nothing propagates to the scheduling caller.
func (s *Scheduler) handleFailure(e *job.Entry, err error, duration time.Duration) {
	s.stats.JobFailed(e, err, duration)
	s.logger.Error("job failed",
		"job_id", e.ID, "name", e.Name, "attempt", e.Attempt, "error", err)

	if e.Attempt >= e.MaxRetries {
		s.stats.JobExhausted(e)
		s.logger.Warn("job exhausted, dropping",
			"job_id", e.ID, "name", e.Name,
			"attempt", e.Attempt, "max_retries", e.MaxRetries)
		return
	}

	delay := s.policy.Delay(e.Attempt)
	next := e.NextRetry(s.now().Add(delay))
	s.queue.Enqueue(next)
	s.stats.RetryScheduled(next, delay)
	s.logger.Debug("retry scheduled",
		"job_id", e.ID, "name", e.Name, "attempt", next.Attempt, "delay", delay)
}
