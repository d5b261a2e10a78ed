package retry

import (
	"math/rand"
	"time"
)

// Jitter decorates another policy with bounded random jitter so that
// uncorrelated simultaneous failures do not retry in lockstep. The returned
// delay is uniformly distributed in [d-fraction*d, d+fraction*d] where d is
// the wrapped policy's delay.
type Jitter struct {
	policy   Policy
	fraction float64
}

var _ Policy = (*Jitter)(nil)

// WithJitter wraps policy with jitter of the given fraction.
func WithJitter(policy Policy, fraction float64) *Jitter {
	if policy == nil {
		panic("policy can't be nil")
	}
	if fraction < 0 {
		panic("fraction can't be < 0")
	}
	if fraction >= 1 {
		panic("fraction can't be >= 1")
	}
	return &Jitter{policy: policy, fraction: fraction}
}

func (p *Jitter) Delay(attempt int) time.Duration {
	d := p.policy.Delay(attempt)
	m := (rand.Float64()*2 - 1) * p.fraction
	return d + time.Duration(m*float64(d))
}
