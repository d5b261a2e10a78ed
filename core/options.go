package core

import (
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/shahzadadil/schedly/retry"
)

// Config holds scheduler configuration
type Config struct {
	DefaultMaxRetries int
	BaseRetryDelay    time.Duration
	MaxConcurrent     int
	TickInterval      time.Duration
	Logger            *slog.Logger
	Statistics        Statistics
	Queue             PendingQueue
	Policy            retry.Policy
	Clock             func() time.Time
}

// Option is a function that modifies scheduler configuration
type Option func(*Config)

// defaultConfig returns default configuration
func defaultConfig() *Config {
	return &Config{
		DefaultMaxRetries: 3,
		BaseRetryDelay:    1000 * time.Millisecond,
		MaxConcurrent:     runtime.GOMAXPROCS(0),
		TickInterval:      1000 * time.Millisecond,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:             time.Now,
	}
}

// WithMaxRetries sets the default retry limit for jobs scheduled without one
func WithMaxRetries(n int) Option {
	return func(c *Config) {
		c.DefaultMaxRetries = n
	}
}

// WithBaseRetryDelay sets the base delay fed into the default backoff policy
func WithBaseRetryDelay(d time.Duration) Option {
	return func(c *Config) {
		c.BaseRetryDelay = d
	}
}

// WithMaxConcurrent sets the number of concurrency permits
func WithMaxConcurrent(n int) Option {
	return func(c *Config) {
		c.MaxConcurrent = n
	}
}

// WithTickInterval sets the dispatch tick period
func WithTickInterval(d time.Duration) Option {
	return func(c *Config) {
		c.TickInterval = d
	}
}

// WithLogger sets the logger for lifecycle events; by default they are
// discarded
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithStatistics sets the lifecycle event collector
func WithStatistics(s Statistics) Option {
	return func(c *Config) {
		c.Statistics = s
	}
}

// WithQueue sets the pending-entry queue
func WithQueue(q PendingQueue) Option {
	return func(c *Config) {
		c.Queue = q
	}
}

// WithRetryPolicy sets the backoff policy, replacing the default
// exponential one
func WithRetryPolicy(p retry.Policy) Option {
	return func(c *Config) {
		c.Policy = p
	}
}

// WithClock sets the time source, used as a test seam
func WithClock(clock func() time.Time) Option {
	return func(c *Config) {
		c.Clock = clock
	}
}
