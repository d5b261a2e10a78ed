package schedly

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shahzadadil/schedly/core"
	"github.com/shahzadadil/schedly/errors"
	"github.com/shahzadadil/schedly/job"
	"github.com/shahzadadil/schedly/registry"
)

var (
	defaultOnce      sync.Once
	defaultScheduler *core.Scheduler
	defaultRegistry  = registry.New()
)

// Default returns the process-wide scheduler, creating and starting it with
// default configuration on first use. It lives for the remainder of the
// process unless Shutdown is called. Callers that need their own
// configuration or lifetime should construct a core.Scheduler explicitly.
func Default() *core.Scheduler {
	defaultOnce.Do(func() {
		defaultScheduler = core.NewScheduler()
		// Start cannot fail on a freshly constructed scheduler.
		_ = defaultScheduler.Start(context.Background())
	})
	return defaultScheduler
}

// Schedule enqueues a job on the default scheduler and returns its identity.
func Schedule(body job.Func, opts ...core.JobOption) (string, error) {
	return Default().Schedule(body, opts...)
}

// ScheduleAfter enqueues a job on the default scheduler with a due time of
// now+delay.
func ScheduleAfter(body job.Func, delay time.Duration, opts ...core.JobOption) (string, error) {
	return Default().ScheduleAfter(body, delay, opts...)
}

// PendingCount returns the default scheduler's pending-queue length.
func PendingCount() int {
	return Default().PendingCount()
}

// Register adds a named job body to the default registry.
func Register(name string, body job.Func) error {
	return defaultRegistry.Register(name, body)
}

// Registry returns the default job registry, for wiring collaborators such
// as the periodic runner.
func Registry() *registry.Registry {
	return defaultRegistry
}

// ScheduleNamed schedules a previously registered job body by name on the
// default scheduler.
func ScheduleNamed(name string, opts ...core.JobOption) (string, error) {
	body, ok := defaultRegistry.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", errors.ErrJobNotFound, name)
	}

	opts = append([]core.JobOption{core.WithName(name)}, opts...)
	return Default().Schedule(body, opts...)
}

// Shutdown closes the default scheduler. It is final for the process: jobs
// scheduled afterwards are accepted as no-ops and never run.
func Shutdown() error {
	return Default().Close()
}
