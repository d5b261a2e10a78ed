package schedly

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahzadadil/schedly/errors"
	"github.com/shahzadadil/schedly/job"
)

// The default scheduler is shared process-wide state; the tests below run
// against one instance in order and end with Shutdown.

func TestDefault_ReturnsSameInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestSchedule_RunsOnDefaultScheduler(t *testing.T) {
	done := make(chan struct{})
	id, err := Schedule(func(ctx context.Context, ec *job.ExecutionContext) error {
		close(done)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// The default tick interval is one second.
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("job never ran on the default scheduler")
	}
}

func TestScheduleNamed_UnknownName(t *testing.T) {
	_, err := ScheduleNamed("never-registered")
	assert.ErrorIs(t, err, errors.ErrJobNotFound)
}

func TestRegisterAndScheduleNamed(t *testing.T) {
	var gotName atomic.Value
	done := make(chan struct{})

	require.NoError(t, Register("welcome-email", func(ctx context.Context, ec *job.ExecutionContext) error {
		gotName.Store(ec.JobName)
		close(done)
		return nil
	}))

	id, err := ScheduleNamed("welcome-email")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	select {
	case <-done:
		assert.Equal(t, "welcome-email", gotName.Load())
	case <-time.After(3 * time.Second):
		t.Fatal("named job never ran")
	}
}

func TestRegister_Validation(t *testing.T) {
	assert.ErrorIs(t, Register("", nil), errors.ErrEmptyJobName)
	assert.ErrorIs(t, Register("no-body", nil), errors.ErrNilJob)
}

func TestShutdown_IsFinalAndIdempotent(t *testing.T) {
	require.NoError(t, Shutdown())
	require.NoError(t, Shutdown())

	// Scheduling after shutdown is an accepted no-op.
	var ran atomic.Bool
	id, err := Schedule(func(ctx context.Context, ec *job.ExecutionContext) error {
		ran.Store(true)
		return nil
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	time.Sleep(100 * time.Millisecond)
	assert.False(t, ran.Load())
}
