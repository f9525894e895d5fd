// Package types holds the type-erased task representation shared by the pool
// and its queue, together with the future that carries each task's result.
package types

import (
	"errors"
	"fmt"
	"runtime"
)

// Task is one queued unit of work. Run executes it on behalf of the worker with
// the given identity and reports the task's own error; Discard resolves it as
// abandoned without running it. A task is either run or discarded, once.
type Task interface {
	Run(workerID int) error
	Discard()
}

// TaskFunc is the nullary callable a task wraps. It receives the identity of the
// worker running it.
type TaskFunc[R any] func(workerID int) (R, error)

// PanicError is stored in a future when the task body panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("worker panic: %v\nstack trace:\n%s", e.Value, e.Stack)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// IsPanic reports whether err came from a recovered task panic.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

type boundTask[R any] struct {
	fn     TaskFunc[R]
	future *Future[R]
}

// NewTask binds fn to a fresh future and returns both halves.
func NewTask[R any](fn TaskFunc[R]) (Task, *Future[R]) {
	f := NewFuture[R]()
	return &boundTask[R]{fn: fn, future: f}, f
}

func (t *boundTask[R]) Run(workerID int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = &PanicError{Value: r, Stack: buf[:n]}

			var zero R
			t.future.complete(zero, err)
		}
	}()

	value, err := t.fn(workerID)
	t.future.complete(value, err)
	return err
}

func (t *boundTask[R]) Discard() {
	t.future.abandon()
}
