// Package periodic implements the fixed-interval scheduling mode: every job
// in a registry is handed to the scheduler once per interval. It is a thin
// collaborator on top of the core scheduler, which still applies its own
// concurrency budget and retry policy to each run.
package periodic

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shahzadadil/schedly/core"
	"github.com/shahzadadil/schedly/job"
)

// JobScheduler is the slice of the core scheduler the runner needs.
type JobScheduler interface {
	Schedule(body job.Func, opts ...core.JobOption) (string, error)
}

// Runner schedules every registered job for immediate execution once per
// fixed interval.
type Runner struct {
	scheduler JobScheduler
	registry  Registry
	interval  time.Duration
	logger    *slog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// Registry is the read side of a job registry.
type Registry interface {
	List() []string
	Get(name string) (job.Func, bool)
}

// NewRunner creates a runner over the given scheduler and registry. The
// interval has a one-second floor, inherited from the underlying cron
// driver.
func NewRunner(scheduler JobScheduler, registry Registry, interval time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		scheduler: scheduler,
		registry:  registry,
		interval:  interval,
		logger:    logger,
	}
}

// Start begins the interval driver. Starting twice is a no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron != nil {
		return
	}

	r.cron = cron.New()
	r.cron.Schedule(cron.Every(r.interval), cron.FuncJob(r.runAll))
	r.cron.Start()

	r.logger.Info("periodic runner started", "interval", r.interval)
}

// Stop halts the interval driver. Runs already handed to the scheduler are
// unaffected.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron == nil {
		return
	}

	<-r.cron.Stop().Done()
	r.cron = nil

	r.logger.Info("periodic runner stopped")
}

// runAll schedules one immediate run of every registered job.
func (r *Runner) runAll() {
	for _, name := range r.registry.List() {
		body, ok := r.registry.Get(name)
		if !ok {
			// Unregistered between List and Get; skip this round.
			continue
		}

		if _, err := r.scheduler.Schedule(body, core.WithName(name)); err != nil {
			r.logger.Error("periodic run not scheduled", "name", name, "error", err)
		}
	}
}
