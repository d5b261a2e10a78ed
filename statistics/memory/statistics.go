// Package memory provides an in-process statistics collector backed by
// plain counters. It is intended for diagnostics and tests.
package memory

import (
	"sync"
	"time"

	"github.com/shahzadadil/schedly/job"
)

// Counters is a snapshot of the event counts for one job name or globally.
type Counters struct {
	Scheduled int64
	Started   int64
	Succeeded int64
	Failed    int64
	Retried   int64
	Exhausted int64
}

// Statistics counts lifecycle events globally and per job name.
type Statistics struct {
	mu     sync.Mutex
	global Counters
	byName map[string]*Counters
}

// New creates a new in-memory statistics collector
func New() *Statistics {
	return &Statistics{
		byName: make(map[string]*Counters),
	}
}

func (s *Statistics) counters(name string) *Counters {
	c, ok := s.byName[name]
	if !ok {
		c = &Counters{}
		s.byName[name] = c
	}
	return c
}

// JobScheduled records a newly scheduled job
func (s *Statistics) JobScheduled(e *job.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global.Scheduled++
	s.counters(e.Name).Scheduled++
}

// JobStarted records the start of an attempt
func (s *Statistics) JobStarted(e *job.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global.Started++
	s.counters(e.Name).Started++
}

// JobSucceeded records a successful attempt
func (s *Statistics) JobSucceeded(e *job.Entry, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global.Succeeded++
	s.counters(e.Name).Succeeded++
}

// JobFailed records a failed attempt
func (s *Statistics) JobFailed(e *job.Entry, err error, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global.Failed++
	s.counters(e.Name).Failed++
}

// RetryScheduled records a re-enqueued retry
func (s *Statistics) RetryScheduled(e *job.Entry, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global.Retried++
	s.counters(e.Name).Retried++
}

// JobExhausted records a permanently dropped job
func (s *Statistics) JobExhausted(e *job.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global.Exhausted++
	s.counters(e.Name).Exhausted++
}

// Global returns a snapshot of the global counters.
func (s *Statistics) Global() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.global
}

// ForJob returns a snapshot of the counters for one job name.
func (s *Statistics) ForJob(name string) Counters {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.byName[name]; ok {
		return *c
	}
	return Counters{}
}
