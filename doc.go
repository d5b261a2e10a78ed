// Package schedly is an in-process, best-effort job scheduler. Callers
// submit jobs with a desired execution time, the scheduler holds them until
// due, executes them under a bounded concurrency budget, and retries
// failures with exponential backoff up to a per-job limit.
//
// Scheduling is fire-and-forget: a job body's failure is absorbed by the
// scheduler and surfaced only through logging and statistics.
//
// # Example
//
//	package main
//
//	import (
//		"context"
//		"time"
//
//		"github.com/shahzadadil/schedly/core"
//		"github.com/shahzadadil/schedly/job"
//	)
//
//	func main() {
//		scheduler := core.NewScheduler(
//			core.WithMaxConcurrent(8),
//			core.WithBaseRetryDelay(500*time.Millisecond),
//		)
//		scheduler.Start(context.Background())
//		defer scheduler.Close()
//
//		scheduler.ScheduleAfter(func(ctx context.Context, ec *job.ExecutionContext) error {
//			// do the work; returning an error schedules a retry
//			return nil
//		}, 5*time.Second, core.WithName("cleanup"))
//	}
//
// # Default scheduler
//
// For programs that want a single shared scheduler, the root package keeps a
// lazily-initialized process-wide instance:
//
//	schedly.Schedule(sendWelcomeEmail)
//	schedly.ScheduleAfter(pruneSessions, time.Minute)
//
// # Periodic mode
//
// The periodic package runs every job in a registry once per fixed interval,
// feeding each run through the same scheduler:
//
//	reg := registry.New()
//	reg.Register("heartbeat", heartbeat)
//	runner := periodic.NewRunner(scheduler, reg, time.Minute, logger)
//	runner.Start()
package schedly
