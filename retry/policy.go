// Package retry provides pluggable backoff policies for failed job attempts.
package retry

import "time"

// Policy computes the delay before re-running a failed attempt.
//
// Implementations must be pure and safe for concurrent use.
type Policy interface {
	// Delay returns how long to wait before the next attempt. attempt is
	// the 0-based attempt number that just failed, so the first retry
	// after the initial failure uses attempt 0.
	Delay(attempt int) time.Duration
}

// DefaultCap is the ceiling applied to exponential growth unless overridden.
const DefaultCap = 30 * time.Second
