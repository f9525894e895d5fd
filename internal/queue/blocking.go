// Package queue provides the goroutine-safe FIFO used by the worker pool to hand
// tasks from submitters to workers.
package queue

import (
	"sync"

	"github.com/eapache/queue"
)

// Blocking is an unbounded FIFO guarded by a single mutex and condition variable.
// Every item pushed is returned by exactly one successful Pop or TryPop, in the
// order it was pushed.
//
// The zero value is not usable; create instances with NewBlocking.
type Blocking[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	items    *queue.Queue
}

// NewBlocking creates an empty queue.
func NewBlocking[T any]() *Blocking[T] {
	q := &Blocking[T]{items: queue.New()}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Push appends item to the back of the queue and wakes at most one goroutine
// blocked in Pop.
func (q *Blocking[T]) Push(item T) {
	q.mu.Lock()
	q.items.Add(item)
	q.mu.Unlock()
	q.notEmpty.Signal()
}

// Pop removes and returns the front item, blocking until one is available.
func (q *Blocking[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.items.Length() == 0 {
		q.notEmpty.Wait()
	}
	return q.remove()
}

// TryPop removes and returns the front item without blocking.
// The boolean is false when the queue was empty.
func (q *Blocking[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Length() == 0 {
		var zero T
		return zero, false
	}
	return q.remove(), true
}

// Clear atomically discards every queued item and returns them in FIFO order so
// the caller can release whatever they hold. Items already handed to a consumer
// are unaffected.
func (q *Blocking[T]) Clear() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.items.Length()
	if n == 0 {
		return nil
	}

	dropped := make([]T, n)
	for i := range n {
		dropped[i], _ = q.items.Get(i).(T)
	}
	q.items = queue.New()
	return dropped
}

// remove pops the front element. A nil interface stored by Push comes back as
// the zero T.
func (q *Blocking[T]) remove() T {
	item, _ := q.items.Remove().(T)
	return item
}

// Empty reports whether the queue held no items at the moment of the call.
func (q *Blocking[T]) Empty() bool {
	return q.Size() == 0
}

// Size returns the number of queued items at the moment of the call.
func (q *Blocking[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}
