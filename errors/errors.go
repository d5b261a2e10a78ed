// Package errors provides error types and utilities for the schedly library.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNilJob          = errors.New("job cannot be nil")
	ErrEmptyJobName    = errors.New("job name cannot be empty")
	ErrJobNotFound     = errors.New("job not found")
	ErrSchedulerClosed = errors.New("scheduler is closed")
)

// JobError represents the failure of one attempt of a job body.
type JobError struct {
	JobID   string // stable job identity
	Name    string // display name
	Attempt int    // attempt that failed, 0-based
	Err     error  // underlying error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %s (%s) attempt %d: %v", e.Name, e.JobID, e.Attempt, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// NewJobError creates a new job error
func NewJobError(jobID, name string, attempt int, err error) error {
	return &JobError{JobID: jobID, Name: name, Attempt: attempt, Err: err}
}
