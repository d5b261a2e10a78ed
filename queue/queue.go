// Package queue provides the in-memory pending-entry queue used by the
// scheduler core: an unordered backlog with concurrent producers and a
// single draining consumer.
package queue

import (
	"sync"

	"github.com/shahzadadil/schedly/job"
)

// Queue is a concurrent, unordered holding area for entries that have not
// yet been extracted for execution. Enqueue may be called from any number of
// goroutines; Drain atomically takes the whole backlog, so entries arriving
// concurrently land in the fresh backlog and are picked up on a later pass.
type Queue struct {
	mu      sync.Mutex
	entries []*job.Entry
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Enqueue adds an entry to the backlog.
func (q *Queue) Enqueue(e *job.Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = append(q.entries, e)
}

// Drain removes and returns every queued entry in one atomic swap. The
// caller owns the returned slice.
func (q *Queue) Drain() []*job.Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	entries := q.entries
	q.entries = nil
	return entries
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.entries)
}
