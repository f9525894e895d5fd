package types

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrAbandoned is returned by a Future whose task was discarded before any
// worker ran it.
var ErrAbandoned = errors.New("task abandoned before execution")

// State is the lifecycle stage of a Future.
type State int32

const (
	// StatePending means the task has not finished (or not started) yet.
	StatePending State = iota
	// StateFulfilled means the task returned without error.
	StateFulfilled
	// StateFailed means the task returned an error or panicked.
	StateFailed
	// StateAbandoned means the task was discarded without running.
	StateAbandoned
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFulfilled:
		return "fulfilled"
	case StateFailed:
		return "failed"
	case StateAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Future is the read side of a task's result slot. The slot is written at most
// once, by the worker that runs the task or by whoever discards it, and can be
// read any number of times afterwards from any goroutine.
//
// Everything the task body wrote before returning is visible to a reader once
// Get returns or Done is closed.
type Future[R any] struct {
	done  chan struct{}
	once  sync.Once
	state atomic.Int32
	value R
	err   error
}

// NewFuture creates an unresolved future.
func NewFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// resolve stores the outcome and wakes every reader. Only the first call has
// any effect; it reports whether this call was the one that resolved.
func (f *Future[R]) resolve(value R, err error, state State) bool {
	resolved := false
	f.once.Do(func() {
		f.value = value
		f.err = err
		f.state.Store(int32(state))
		close(f.done)
		resolved = true
	})
	return resolved
}

func (f *Future[R]) complete(value R, err error) bool {
	if err != nil {
		return f.resolve(value, err, StateFailed)
	}
	return f.resolve(value, nil, StateFulfilled)
}

func (f *Future[R]) abandon() bool {
	var zero R
	return f.resolve(zero, ErrAbandoned, StateAbandoned)
}

// Get blocks until the task has finished or been discarded and returns its
// result. A discarded task yields ErrAbandoned.
func (f *Future[R]) Get() (R, error) {
	<-f.done
	return f.value, f.err
}

// GetWithContext is Get bounded by ctx. When ctx ends first the zero value and
// ctx.Err() are returned and the future stays readable.
func (f *Future[R]) GetWithContext(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// TryGet returns the result without blocking. ready is false while the task is
// still pending, in which case value and err are zero.
func (f *Future[R]) TryGet() (value R, err error, ready bool) {
	select {
	case <-f.done:
		return f.value, f.err, true
	default:
		return value, nil, false
	}
}

// Done returns a channel that is closed once the future leaves StatePending.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// IsReady reports whether the future has been resolved in any way, including
// abandonment.
func (f *Future[R]) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// State returns the current lifecycle stage.
func (f *Future[R]) State() State {
	return State(f.state.Load())
}
