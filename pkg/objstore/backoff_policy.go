package objstore

import (
	"math/rand"
	"time"
)

// BackoffPolicy computes the delay before the next retry attempt. Like
// RetryPolicy, a policy holds per-call mutable state and is cloned from
// its prototype for every top-level call.
type BackoffPolicy interface {
	Clone() BackoffPolicy
	// Delay returns how long to wait before the next attempt and
	// advances the policy's internal state.
	Delay() time.Duration
}

// ExponentialBackoffPolicy is a truncated exponential backoff with
// jitter: the nominal delay doubles on every attempt up to MaxDelay, and
// each wait is drawn uniformly from [nominal/2, nominal] so that
// concurrent callers do not retry in lockstep.
type ExponentialBackoffPolicy struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	current      time.Duration
	rnd          *rand.Rand
}

// NewExponentialBackoffPolicy returns a backoff starting at initialDelay
// and doubling per attempt up to maxDelay.
func NewExponentialBackoffPolicy(initialDelay, maxDelay time.Duration) *ExponentialBackoffPolicy {
	return &ExponentialBackoffPolicy{
		InitialDelay: initialDelay,
		MaxDelay:     maxDelay,
	}
}

func (p *ExponentialBackoffPolicy) Clone() BackoffPolicy {
	return &ExponentialBackoffPolicy{
		InitialDelay: p.InitialDelay,
		MaxDelay:     p.MaxDelay,
		current:      p.InitialDelay,
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (p *ExponentialBackoffPolicy) Delay() time.Duration {
	if p.rnd == nil {
		// Prototype used directly without Clone; behave sensibly anyway.
		p.current = p.InitialDelay
		p.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	nominal := p.current
	p.current *= 2
	if p.current > p.MaxDelay {
		p.current = p.MaxDelay
	}
	if nominal <= 0 {
		return 0
	}
	half := nominal / 2
	return half + time.Duration(p.rnd.Int63n(int64(nominal-half)+1))
}
