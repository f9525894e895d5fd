package pool

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/utkarsh5026/threadpool/internal/queue"
	"github.com/utkarsh5026/threadpool/internal/types"
	"golang.org/x/sync/errgroup"
)

var (
	ErrAlreadyStarted = errors.New("pool already started")
	ErrNotStarted     = errors.New("pool not started")
)

const (
	stateCreated int32 = iota
	stateRunning
	stateStopping
)

// WorkerPool runs submitted tasks on a fixed set of worker threads.
//
// A pool alternates between two externally visible states: created (no workers)
// and running. Start moves it to running; Stop drains the queue, joins every
// worker and returns it to created, after which Start may be called again.
// Tasks may be submitted in either state; while the pool is created they simply
// wait in the queue.
//
// Start, Stop and SetWorkerCount are serialized internally. Submit, ClearPending
// and the read accessors may be called from any goroutine at any time.
type WorkerPool struct {
	conf  *workerPoolConfig
	queue *queue.Blocking[types.Task]

	mu    sync.Mutex
	group *errgroup.Group

	workerCount atomic.Int64
	state       atomic.Int32
	markers     atomic.Int64
	threads     *threadRegistry
}

// New creates a pool in the created state. No worker runs until Start.
//
// Default configuration:
//   - workerCount: runtime.GOMAXPROCS(0)
//   - maxAttempts: 1 (no retries)
//   - no rate limit, no metrics, no hooks
//
// Example:
//
//	p := pool.New(pool.WithWorkerCount(4))
//	if err := p.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Stop()
//
//	future := pool.Submit(p, func() int { return 6 * 7 })
//	answer, err := future.Get()
func New(opts ...WorkerPoolOption) *WorkerPool {
	cfg := newConfig(opts...)
	p := &WorkerPool{
		conf:    cfg,
		queue:   queue.NewBlocking[types.Task](),
		threads: newThreadRegistry(),
	}
	p.workerCount.Store(int64(cfg.workerCount))
	return p
}

// Start spawns WorkerCount worker threads with identities 1..WorkerCount.
// Identity 0 is reserved for the thread driving the pool (see RegisterMainThread).
//
// Returns ErrAlreadyStarted if the pool is running.
func (p *WorkerPool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.Load() != stateCreated {
		return ErrAlreadyStarted
	}
	p.state.Store(stateRunning)

	workers := p.WorkerCount()
	g := &errgroup.Group{}
	for i := range workers {
		id := i + 1
		g.Go(func() error {
			return p.worker(id)
		})
	}
	p.group = g
	p.conf.metrics.setPending(p.Pending())

	p.debugf("started, %d tasks already queued", p.Pending())
	return nil
}

// Stop shuts the pool down and returns it to the created state.
//
// Every task queued before Stop was called is still run; each worker exits once
// it reaches the wake-up marker Stop appends behind them. Stop returns only after
// all workers have exited. Anything still queued at that point (tasks submitted
// concurrently with Stop) is discarded and its future reports ErrAbandoned.
//
// Stop waits for the pool's own workers, so calling it from inside one of its
// tasks can never return; that case panics instead. Detecting it relies on OS
// thread ids (see Identity), elsewhere it deadlocks. Returns ErrNotStarted if
// the pool is not running.
func (p *WorkerPool) Stop() error {
	if id, ok := p.Identity(); ok && id != MainIdentity {
		panic(fmt.Sprintf("pool: Stop called from inside a task on worker %d", id))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.Load() != stateRunning {
		return ErrNotStarted
	}
	p.state.Store(stateStopping)

	workers := p.WorkerCount()
	// A worker blocked in Pop has no other way to notice the stop flag.
	p.markers.Store(int64(workers))
	for range workers {
		p.queue.Push(wakeTask{})
	}

	err := p.group.Wait()

	dropped := p.discard(p.queue.Clear(), false)
	p.group = nil
	p.markers.Store(0)
	p.state.Store(stateCreated)

	p.debugf("stopped, %d late tasks abandoned", dropped)
	return err
}

// ClearPending discards every task that no worker has picked up yet and returns
// how many were dropped. Their futures report ErrAbandoned. Tasks already
// running are unaffected and complete normally.
func (p *WorkerPool) ClearPending() int {
	n := p.discard(p.queue.Clear(), true)
	p.debugf("cleared %d pending tasks", n)
	return n
}

// SetWorkerCount changes how many workers the next Start spawns.
//
// Panics if the pool is running or n is negative: resizing a live pool is a
// programming error, not a recoverable condition.
func (p *WorkerPool) SetWorkerCount(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n < 0 {
		panic(fmt.Sprintf("pool: negative worker count %d", n))
	}
	if p.state.Load() != stateCreated {
		panic("pool: SetWorkerCount called while workers are running")
	}
	p.workerCount.Store(int64(n))
}

// WorkerCount returns the configured number of workers. It is safe to call
// from inside a task.
func (p *WorkerPool) WorkerCount() int {
	return int(p.workerCount.Load())
}

// Pending returns the number of queued tasks no worker has picked up yet.
// Wake-up markers queued by Stop are not counted. The value may be stale as
// soon as it is returned.
func (p *WorkerPool) Pending() int {
	return max(p.queue.Size()-int(p.markers.Load()), 0)
}

// Running reports whether workers are currently started.
func (p *WorkerPool) Running() bool {
	return p.state.Load() != stateCreated
}

func stateName(state int32) string {
	switch state {
	case stateCreated:
		return "created"
	case stateRunning:
		return "running"
	case stateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

func (p *WorkerPool) stopping() bool {
	return p.state.Load() == stateStopping
}

func (p *WorkerPool) enqueue(t types.Task) {
	p.queue.Push(t)
	p.conf.metrics.submitted(p.Pending())
}

// discard abandons dropped tasks. Wake-up markers swept up by a concurrent
// ClearPending during Stop are put back so no worker is left blocked.
func (p *WorkerPool) discard(tasks []types.Task, keepMarkers bool) int {
	n := 0
	for _, t := range tasks {
		if _, ok := t.(wakeTask); ok {
			if keepMarkers {
				p.queue.Push(t)
			}
			continue
		}
		t.Discard()
		n++
	}
	p.conf.metrics.abandoned(n, p.Pending())
	return n
}

// wakeTask is the no-op marker Stop pushes once per worker.
type wakeTask struct{}

func (wakeTask) Run(int) error { return nil }
func (wakeTask) Discard()      {}
