package objstore

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func seededBackoff(initial, max time.Duration) *ExponentialBackoffPolicy {
	return &ExponentialBackoffPolicy{
		InitialDelay: initial,
		MaxDelay:     max,
		current:      initial,
		rnd:          rand.New(rand.NewSource(42)),
	}
}

func TestExponentialBackoffBounds(t *testing.T) {
	p := seededBackoff(100*time.Millisecond, time.Second)

	// Nominal delays double per attempt, truncated at the cap; each wait
	// lands in [nominal/2, nominal].
	nominals := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		time.Second,
		time.Second,
	}
	for i, nominal := range nominals {
		d := p.Delay()
		assert.GreaterOrEqual(t, d, nominal/2, "attempt %d", i)
		assert.LessOrEqual(t, d, nominal, "attempt %d", i)
	}
}

func TestExponentialBackoffCloneResetsState(t *testing.T) {
	proto := NewExponentialBackoffPolicy(100*time.Millisecond, time.Second)

	warm := proto.Clone()
	for i := 0; i < 5; i++ {
		warm.Delay()
	}

	// A fresh clone starts over at the initial delay.
	fresh := proto.Clone()
	d := fresh.Delay()
	assert.GreaterOrEqual(t, d, 50*time.Millisecond)
	assert.LessOrEqual(t, d, 100*time.Millisecond)
}

func TestExponentialBackoffClonesAreIndependent(t *testing.T) {
	proto := NewExponentialBackoffPolicy(100*time.Millisecond, time.Second)
	a := proto.Clone()
	b := proto.Clone()

	a.Delay()
	a.Delay()
	a.Delay()

	// b is unaffected by a's progress.
	d := b.Delay()
	assert.LessOrEqual(t, d, 100*time.Millisecond)
}
