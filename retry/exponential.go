package retry

import "time"

// Exponential doubles the delay with every failed attempt:
// Delay(attempt) = min(base * 2^attempt, cap). No jitter is applied; wrap
// with WithJitter when lockstep retries are a concern.
type Exponential struct {
	base time.Duration
	cap  time.Duration
}

var _ Policy = (*Exponential)(nil)

// NewExponential creates an exponential policy with the given base delay and
// the default 30s cap.
func NewExponential(base time.Duration) *Exponential {
	if base <= 0 {
		panic("base can't be <= 0")
	}
	return &Exponential{base: base, cap: DefaultCap}
}

// WithCap overrides the growth ceiling.
func (p *Exponential) WithCap(cap time.Duration) *Exponential {
	if cap < p.base {
		panic("cap can't be < base")
	}
	p.cap = cap
	return p
}

func (p *Exponential) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	// The shift overflows long before attempt reaches 63; an overflowed
	// duration goes non-positive and is clamped to the cap as well.
	if attempt >= 63 {
		return p.cap
	}
	d := p.base << uint(attempt)
	if d <= 0 || d > p.cap {
		return p.cap
	}
	return d
}
