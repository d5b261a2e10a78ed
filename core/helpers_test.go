package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shahzadadil/schedly/job"
)

// newTestScheduler creates and starts a scheduler with fast timings suitable
// for tests, and closes it on cleanup.
func newTestScheduler(t *testing.T, opts ...Option) *Scheduler {
	t.Helper()

	base := []Option{
		WithTickInterval(10 * time.Millisecond),
		WithBaseRetryDelay(10 * time.Millisecond),
	}
	s := NewScheduler(append(base, opts...)...)
	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// waitFor polls cond until it holds or the timeout elapses.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func nopBody(ctx context.Context, ec *job.ExecutionContext) error {
	return nil
}
