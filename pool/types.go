package pool

import (
	"github.com/utkarsh5026/threadpool/internal/algorithms"
	"github.com/utkarsh5026/threadpool/internal/types"
)

// Future is the read side of a submitted task's result. See Submit.
type Future[R any] = types.Future[R]

// State is the lifecycle stage of a Future.
type State = types.State

// PanicError is the error a Future carries when its task panicked.
type PanicError = types.PanicError

const (
	StatePending   = types.StatePending
	StateFulfilled = types.StateFulfilled
	StateFailed    = types.StateFailed
	StateAbandoned = types.StateAbandoned
)

// BackoffType selects how retry delays grow. See WithBackoff.
type BackoffType = algorithms.BackoffType

const (
	BackoffExponential = algorithms.BackoffExponential
	BackoffJittered    = algorithms.BackoffJittered
)

// ErrAbandoned is returned by futures whose task was dropped by ClearPending or
// Stop before a worker picked it up.
var ErrAbandoned = types.ErrAbandoned

// IsPanic reports whether err came from a task that panicked.
func IsPanic(err error) bool {
	return types.IsPanic(err)
}
