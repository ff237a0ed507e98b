package objstore

import (
	"fmt"
	"time"
)

// RetryPolicy decides whether a transient failure is worth another
// attempt. Policies carry per-call mutable state (failure counters,
// deadlines), so RetryClient clones a fresh instance from its prototype
// for every top-level call; concurrent calls never share state.
type RetryPolicy interface {
	// Clone returns a fresh policy with the same limits and no
	// accumulated state.
	Clone() RetryPolicy
	// OnFailure records one transient failure and reports whether
	// another attempt is allowed.
	OnFailure(s Status) bool
	String() string
}

// LimitedErrorCountRetryPolicy allows up to MaxFailures transient
// failures, i.e. MaxFailures+1 total attempts.
type LimitedErrorCountRetryPolicy struct {
	MaxFailures int
	failures    int
}

// NewLimitedErrorCountRetryPolicy returns a policy tolerating maxFailures
// transient failures before giving up.
func NewLimitedErrorCountRetryPolicy(maxFailures int) *LimitedErrorCountRetryPolicy {
	return &LimitedErrorCountRetryPolicy{MaxFailures: maxFailures}
}

func (p *LimitedErrorCountRetryPolicy) Clone() RetryPolicy {
	return NewLimitedErrorCountRetryPolicy(p.MaxFailures)
}

func (p *LimitedErrorCountRetryPolicy) OnFailure(Status) bool {
	p.failures++
	return p.failures <= p.MaxFailures
}

func (p *LimitedErrorCountRetryPolicy) String() string {
	return fmt.Sprintf("LimitedErrorCountRetryPolicy{max_failures=%d}", p.MaxFailures)
}

// LimitedTimeRetryPolicy retries transient failures until a wall-clock
// deadline, measured from the moment the per-call clone is made.
type LimitedTimeRetryPolicy struct {
	MaxDuration time.Duration
	deadline    time.Time
	now         func() time.Time
}

// NewLimitedTimeRetryPolicy returns a policy retrying for at most
// maxDuration per top-level call.
func NewLimitedTimeRetryPolicy(maxDuration time.Duration) *LimitedTimeRetryPolicy {
	return &LimitedTimeRetryPolicy{MaxDuration: maxDuration, now: time.Now}
}

func (p *LimitedTimeRetryPolicy) Clone() RetryPolicy {
	clone := &LimitedTimeRetryPolicy{MaxDuration: p.MaxDuration, now: p.now}
	clone.deadline = clone.now().Add(clone.MaxDuration)
	return clone
}

func (p *LimitedTimeRetryPolicy) OnFailure(Status) bool {
	return p.now().Before(p.deadline)
}

func (p *LimitedTimeRetryPolicy) String() string {
	return fmt.Sprintf("LimitedTimeRetryPolicy{max_duration=%s}", p.MaxDuration)
}
