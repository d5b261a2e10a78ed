package core

import (
	"sync"
	"time"

	"github.com/shahzadadil/schedly/job"
	"github.com/shahzadadil/schedly/queue"
)

// recordingStats captures lifecycle events for assertions.
type recordingStats struct {
	mu         sync.Mutex
	scheduled  []string
	started    []int
	succeeded  int
	failed     int
	retried    []time.Duration
	exhausted  []string
	failedErrs []error
}

func newRecordingStats() *recordingStats {
	return &recordingStats{}
}

func (r *recordingStats) JobScheduled(e *job.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, e.ID)
}

func (r *recordingStats) JobStarted(e *job.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, e.Attempt)
}

func (r *recordingStats) JobSucceeded(e *job.Entry, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.succeeded++
}

func (r *recordingStats) JobFailed(e *job.Entry, err error, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed++
	r.failedErrs = append(r.failedErrs, err)
}

func (r *recordingStats) RetryScheduled(e *job.Entry, delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retried = append(r.retried, delay)
}

func (r *recordingStats) JobExhausted(e *job.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exhausted = append(r.exhausted, e.ID)
}

func (r *recordingStats) counts() (started, succeeded, failed, retried, exhausted int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.started), r.succeeded, r.failed, len(r.retried), len(r.exhausted)
}

func (r *recordingStats) exhaustedIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.exhausted...)
}

func (r *recordingStats) retryDelays() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.retried...)
}

// panicQueue wraps a real queue and panics on the first N drains, to prove
// the dispatch loop survives internal failures.
type panicQueue struct {
	*queue.Queue
	mu         sync.Mutex
	panicsLeft int
}

func newPanicQueue(panics int) *panicQueue {
	return &panicQueue{Queue: queue.New(), panicsLeft: panics}
}

func (q *panicQueue) Drain() []*job.Entry {
	q.mu.Lock()
	left := q.panicsLeft
	if left > 0 {
		q.panicsLeft--
	}
	q.mu.Unlock()

	if left > 0 {
		panic("drain failure")
	}
	return q.Queue.Drain()
}
