package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahzadadil/schedly/errors"
	"github.com/shahzadadil/schedly/job"
)

// Test job bodies for testing
func testBody1(ctx context.Context, ec *job.ExecutionContext) error {
	return nil
}

func testBody2(ctx context.Context, ec *job.ExecutionContext) error {
	return nil
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name      string
		jobName   string
		body      job.Func
		expectErr error
	}{
		{
			name:      "valid registration",
			jobName:   "ReportJob",
			body:      testBody1,
			expectErr: nil,
		},
		{
			name:      "empty job name",
			jobName:   "",
			body:      testBody1,
			expectErr: errors.ErrEmptyJobName,
		},
		{
			name:      "nil job body",
			jobName:   "ReportJob",
			body:      nil,
			expectErr: errors.ErrNilJob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := New()

			err := registry.Register(tt.jobName, tt.body)

			if tt.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				require.NoError(t, err)

				// Verify registration worked
				body, found := registry.Get(tt.jobName)
				assert.True(t, found)
				assert.NotNil(t, body)
			}
		})
	}
}

func TestRegistry_BasicOperations(t *testing.T) {
	registry := New()

	// Register jobs
	err := registry.Register("Job1", testBody1)
	require.NoError(t, err)

	err = registry.Register("Job2", testBody2)
	require.NoError(t, err)

	// Test Get
	body, found := registry.Get("Job1")
	assert.True(t, found)
	assert.NotNil(t, body)

	_, found = registry.Get("NonExistent")
	assert.False(t, found)

	// Test List
	names := registry.List()
	assert.Len(t, names, 2)
	assert.Contains(t, names, "Job1")
	assert.Contains(t, names, "Job2")

	// Test Remove
	err = registry.Remove("Job1")
	require.NoError(t, err)

	_, found = registry.Get("Job1")
	assert.False(t, found)

	names = registry.List()
	assert.Len(t, names, 1)

	// Test Clear
	registry.Clear()
	assert.Empty(t, registry.List())
}
