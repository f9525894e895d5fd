package pool

import (
	"context"
	"time"

	"github.com/utkarsh5026/threadpool/internal/cpu"
	"github.com/utkarsh5026/threadpool/internal/types"
)

// worker is the loop run by each pool thread. It owns one OS thread for its
// whole life so the thread can be mapped back to id.
//
// The stop flag is only honoured when a wake-up marker is popped. Markers are
// queued behind everything submitted before Stop, so those tasks are drained
// before any worker exits.
func (p *WorkerPool) worker(id int) error {
	release := cpu.LockWorkerThread(id, p.conf.pinThreads)
	defer release()

	p.threads.registerCurrent(id)
	defer p.threads.unregisterCurrent()

	for {
		t := p.queue.Pop()
		if _, ok := t.(wakeTask); ok {
			if p.stopping() {
				p.markers.Add(-1)
				p.debugf("worker %d exiting", id)
				return nil
			}
			continue
		}

		p.conf.metrics.setPending(p.Pending())
		p.execute(id, t)
	}
}

// execute runs a single task with hooks, rate limiting and metrics around it.
// Task failures, including panics, are already captured in the task's future;
// nothing here can take the worker down.
func (p *WorkerPool) execute(id int, t types.Task) {
	if p.conf.rateLimiter != nil {
		_ = p.conf.rateLimiter.Wait(context.Background())
	}

	if p.conf.beforeTask != nil {
		callHook(func() { p.conf.beforeTask(id) })
	}

	p.conf.metrics.taskStarted()
	start := time.Now()

	err := t.Run(id)

	p.conf.metrics.taskFinished(time.Since(start), err)

	if p.conf.afterTask != nil {
		callHook(func() { p.conf.afterTask(id, err) })
	}
}
