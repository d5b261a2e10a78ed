package retry

import "time"

// Fixed waits the same interval before every retry.
type Fixed struct {
	interval time.Duration
}

var _ Policy = (*Fixed)(nil)

// NewFixed creates a fixed-interval policy.
func NewFixed(interval time.Duration) *Fixed {
	if interval < 0 {
		panic("interval can't be < 0")
	}
	return &Fixed{interval: interval}
}

func (p *Fixed) Delay(int) time.Duration {
	return p.interval
}
