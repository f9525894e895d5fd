// Package algorithms holds the retry delay policies used when a task returns an
// error and the pool is configured to try it again.
package algorithms

import (
	"math/rand"
	"sync"
	"time"
)

// maxShift keeps 1<<attempt inside int64; larger attempts always hit maxDelay.
const maxShift = 62

// BackoffType selects a retry delay policy.
type BackoffType int

const (
	// BackoffExponential doubles the delay on every attempt (default).
	BackoffExponential BackoffType = iota
	// BackoffJittered randomises each exponential delay by ±jitterFactor.
	BackoffJittered
)

// BackoffStrategy computes the pause before a retry.
// attempt is 0 for the first retry after the initial failure.
type BackoffStrategy interface {
	NextDelay(attempt int) time.Duration
}

// NewBackoffStrategy builds the policy for backoffType. A non-positive maxDelay
// means the delay is never capped.
func NewBackoffStrategy(backoffType BackoffType, initialDelay, maxDelay time.Duration, jitterFactor float64) BackoffStrategy {
	if maxDelay <= 0 {
		maxDelay = time.Duration(1<<63 - 1)
	}

	exp := exponentialBackoff{initialDelay: initialDelay, maxDelay: maxDelay}
	if backoffType == BackoffJittered {
		return &jitteredBackoff{
			base:   exp,
			factor: min(max(jitterFactor, 0), 1),
			rng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- jitter does not need crypto rand
		}
	}
	return exp
}

// exponentialBackoff waits initialDelay * 2^attempt, capped at maxDelay.
type exponentialBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
}

func (b exponentialBackoff) NextDelay(attempt int) time.Duration {
	if attempt < 0 || b.initialDelay <= 0 {
		return 0
	}
	// initialDelay * 2^attempt would exceed maxDelay (and possibly int64).
	if attempt >= maxShift || b.initialDelay > b.maxDelay>>uint(attempt) {
		return b.maxDelay
	}

	return time.Duration(int64(1)<<uint(attempt)) * b.initialDelay
}

// jitteredBackoff spreads retries of tasks that failed together so they do not
// hit a shared dependency at the same instant.
type jitteredBackoff struct {
	base   exponentialBackoff
	factor float64

	mu  sync.Mutex
	rng *rand.Rand
}

func (b *jitteredBackoff) NextDelay(attempt int) time.Duration {
	delay := b.base.NextDelay(attempt)
	if delay == 0 {
		return 0
	}

	b.mu.Lock()
	multiplier := 1 + (b.rng.Float64()*2-1)*b.factor
	b.mu.Unlock()

	jittered := float64(delay) * multiplier
	if jittered >= float64(b.base.maxDelay) {
		return b.base.maxDelay
	}
	return time.Duration(jittered)
}
