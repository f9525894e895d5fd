package pool

import "github.com/utkarsh5026/threadpool/internal/queue"

// CallbackQueue carries functions from any goroutine back to one owning
// thread, which runs them when it chooses. Use it for work that has to happen
// on a particular thread, e.g. uploading a finished tile to a resource only
// the main thread may touch.
type CallbackQueue struct {
	q *queue.Blocking[func()]
}

func NewCallbackQueue() *CallbackQueue {
	return &CallbackQueue{q: queue.NewBlocking[func()]()}
}

// Post queues fn for the owning thread. Nil functions are ignored.
func (c *CallbackQueue) Post(fn func()) {
	if fn == nil {
		return
	}
	c.q.Push(fn)
}

// RunPending runs the callbacks queued when it was called, in order, and
// returns how many ran. Callbacks posted while it runs wait for the next call,
// so a callback that reposts itself cannot spin the owner forever.
func (c *CallbackQueue) RunPending() int {
	n := c.q.Size()
	ran := 0
	for ran < n {
		fn, ok := c.q.TryPop()
		if !ok {
			break
		}
		fn()
		ran++
	}
	return ran
}

// RunNext blocks until a callback is available and runs it.
func (c *CallbackQueue) RunNext() {
	fn := c.q.Pop()
	fn()
}

// Len returns how many callbacks are waiting.
func (c *CallbackQueue) Len() int {
	return c.q.Size()
}
