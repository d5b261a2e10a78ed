package core

import (
	"time"

	"github.com/shahzadadil/schedly/job"
)

// run drives the periodic dispatch loop until the scheduler is closed.
func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Debug("dispatch loop stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick runs one extraction pass and launches every ready entry on its own
// goroutine. The tick itself never blocks on a permit or a job body, and a
// panic anywhere in the pass is contained so the loop keeps ticking.
func (s *Scheduler) tick() {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("dispatch tick panicked", "panic", r)
		}
	}()

	for _, e := range s.extractReady() {
		go s.execute(e)
	}
}

// extractReady drains the whole backlog once, re-enqueues entries that are
// not yet due, and silently drops exhausted ones. Exhaustion takes
// precedence over readiness. Entries enqueued while the pass runs land in
// the fresh backlog and are picked up on a later tick.
func (s *Scheduler) extractReady() []*job.Entry {
	now := s.now()

	var ready []*job.Entry
	for _, e := range s.queue.Drain() {
		switch {
		case e.Exhausted():
			s.stats.JobExhausted(e)
			s.logger.Warn("dropping exhausted entry",
				"job_id", e.ID, "name", e.Name, "attempt", e.Attempt)
		case e.Ready(now):
			ready = append(ready, e)
		default:
			s.queue.Enqueue(e)
		}
	}
	return ready
}
