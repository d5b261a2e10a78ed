// Package core implements the scheduling engine: the pending-entry queue
// consumer, the due-extraction pass, the concurrency-bounded dispatcher, and
// the retry/backoff outcome handling.
package core

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/shahzadadil/schedly/errors"
	"github.com/shahzadadil/schedly/job"
	"github.com/shahzadadil/schedly/queue"
	"github.com/shahzadadil/schedly/retry"
	"github.com/shahzadadil/schedly/statistics/noop"
)

// Scheduler holds jobs until their due time and executes them under a
// bounded concurrency budget, retrying failures with backoff. Scheduling is
// fire-and-forget: a job body's failure is never surfaced to the caller
// beyond logging and statistics.
type Scheduler struct {
	config *Config
	queue  PendingQueue
	stats  Statistics
	logger *slog.Logger
	policy retry.Policy
	sem    *semaphore.Weighted

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started atomic.Bool
	closed  atomic.Bool
}

// NewScheduler creates a new scheduler with dependency injection
func NewScheduler(options ...Option) *Scheduler {
	config := defaultConfig()
	for _, opt := range options {
		opt(config)
	}

	if config.MaxConcurrent < 1 {
		config.MaxConcurrent = 1
	}
	if config.TickInterval <= 0 {
		config.TickInterval = 1000 * time.Millisecond
	}
	if config.Queue == nil {
		config.Queue = queue.New()
	}
	if config.Statistics == nil {
		config.Statistics = noop.New()
	}
	if config.Policy == nil {
		config.Policy = retry.NewExponential(config.BaseRetryDelay)
	}

	return &Scheduler{
		config: config,
		queue:  config.Queue,
		stats:  config.Statistics,
		logger: config.Logger,
		policy: config.Policy,
		sem:    semaphore.NewWeighted(int64(config.MaxConcurrent)),
	}
}

// Start begins the dispatch loop. Starting twice is a no-op; starting a
// closed scheduler is an error.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.closed.Load() {
		return errors.ErrSchedulerClosed
	}
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.run()

	s.logger.Info("scheduler started",
		"tick_interval", s.config.TickInterval,
		"max_concurrent", s.config.MaxConcurrent)
	return nil
}

// Close stops the dispatch loop. In-flight job bodies keep running to
// completion; waits for a concurrency permit are abandoned; entries left in
// the queue are never executed. Close is idempotent, and Schedule calls made
// afterwards are accepted as no-ops.
func (s *Scheduler) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()

	s.logger.Info("scheduler stopped", "pending", s.queue.Len())
	return nil
}

// Schedule enqueues a new logical job and returns its stable identity. The
// due time defaults to now, meaning the job starts on the next dispatch
// tick. A nil body is caller misuse and fails immediately; scheduling on a
// closed scheduler is a silent no-op that still hands back an ID.
func (s *Scheduler) Schedule(body job.Func, opts ...JobOption) (string, error) {
	if body == nil {
		return "", errors.ErrNilJob
	}

	jc := jobConfig{maxRetries: -1}
	for _, opt := range opts {
		opt(&jc)
	}

	id := uuid.NewString()

	name := jc.name
	if name == "" {
		name = id
	}
	dueAt := jc.dueAt
	if dueAt.IsZero() {
		dueAt = s.now()
	}
	maxRetries := jc.maxRetries
	if maxRetries < 0 {
		maxRetries = s.config.DefaultMaxRetries
	}

	e := job.NewEntry(id, name, body, dueAt, maxRetries)
	for k, v := range jc.values {
		e.Context.SetValue(k, v)
	}

	if s.closed.Load() {
		s.logger.Debug("scheduler closed, dropping job", "job_id", id, "name", name)
		return id, nil
	}

	s.queue.Enqueue(e)
	s.stats.JobScheduled(e)
	s.logger.Debug("job scheduled",
		"job_id", id, "name", name, "due_at", dueAt, "max_retries", maxRetries)
	return id, nil
}

// ScheduleAfter is a convenience for Schedule with a due time of now+delay.
func (s *Scheduler) ScheduleAfter(body job.Func, delay time.Duration, opts ...JobOption) (string, error) {
	opts = append([]JobOption{WithDueAt(s.now().Add(delay))}, opts...)
	return s.Schedule(body, opts...)
}

// PendingCount returns the number of entries waiting in the queue.
func (s *Scheduler) PendingCount() int {
	return s.queue.Len()
}

func (s *Scheduler) now() time.Time {
	return s.config.Clock()
}
