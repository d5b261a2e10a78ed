package core

import (
	"time"
)

// jobConfig holds per-job scheduling parameters
type jobConfig struct {
	dueAt      time.Time // zero means "now"
	name       string
	maxRetries int // -1 means "use the scheduler default"
	values     map[string]any
}

// JobOption is a function that modifies per-job scheduling parameters
type JobOption func(*jobConfig)

// WithDueAt sets the time the job becomes eligible for dispatch
func WithDueAt(t time.Time) JobOption {
	return func(c *jobConfig) {
		c.dueAt = t
	}
}

// WithName sets the job's display name; it defaults to the job ID
func WithName(name string) JobOption {
	return func(c *jobConfig) {
		c.name = name
	}
}

// WithJobMaxRetries overrides the scheduler's default retry limit for this
// job. Zero disables retries entirely.
func WithJobMaxRetries(n int) JobOption {
	return func(c *jobConfig) {
		c.maxRetries = n
	}
}

// WithValue stores a caller-supplied value in the job's execution context
func WithValue(key string, value any) JobOption {
	return func(c *jobConfig) {
		if c.values == nil {
			c.values = make(map[string]any)
		}
		c.values[key] = value
	}
}
