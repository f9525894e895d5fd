package pool

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestClearPending_UnstartedPool(t *testing.T) {
	p := New(WithWorkerCount(4))

	var executed atomic.Int32
	futures := make([]*Future[int], 10)
	for i := range futures {
		futures[i] = Submit(p, func() int {
			executed.Add(1)
			return i
		})
	}

	if n := p.ClearPending(); n != 10 {
		t.Errorf("expected 10 tasks cleared, got %d", n)
	}
	if p.Pending() != 0 {
		t.Errorf("expected empty queue, got %d", p.Pending())
	}

	for i, f := range futures {
		if _, err := f.Get(); !errors.Is(err, ErrAbandoned) {
			t.Errorf("future %d: expected ErrAbandoned, got %v", i, err)
		}
		if f.State() != StateAbandoned {
			t.Errorf("future %d: expected abandoned state, got %v", i, f.State())
		}
	}

	// Starting afterwards must not resurrect anything.
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}
	if err := p.Stop(); err != nil {
		t.Fatal(err)
	}
	if executed.Load() != 0 {
		t.Errorf("cleared tasks ran %d times", executed.Load())
	}
}

func TestClearPending_InFlightTaskCompletes(t *testing.T) {
	runConfigTest(t, func(t *testing.T, c poolConfig) {
		p := startPool(t, c.opts...)

		started := make(chan struct{})
		release := make(chan struct{})
		inFlight := Submit(p, func() string {
			close(started)
			<-release
			return "done"
		})

		<-started

		queued := make([]*Future[int], 5)
		for i := range queued {
			queued[i] = Submit(p, func() int { return i })
		}

		if n := p.ClearPending(); n != 5 {
			t.Errorf("expected 5 tasks cleared, got %d", n)
		}
		close(release)

		if v, err := inFlight.Get(); err != nil || v != "done" {
			t.Errorf("in-flight task: expected (done, nil), got (%q, %v)", v, err)
		}
		for i, f := range queued {
			if _, err := f.Get(); !errors.Is(err, ErrAbandoned) {
				t.Errorf("queued future %d: expected ErrAbandoned, got %v", i, err)
			}
		}
	}, 1)
}

func TestClearPending_DuringStopKeepsWorkersWakeable(t *testing.T) {
	p := New(WithWorkerCount(1))
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}

	started := make(chan struct{})
	release := make(chan struct{})
	Execute(p, func() {
		close(started)
		<-release
	})
	<-started

	stopped := make(chan error, 1)
	go func() {
		stopped <- p.Stop()
	}()

	// The blocked worker's wake-up marker is the only queued item.
	waitFor(t, time.Second, func() bool { return p.queue.Size() == 1 })

	if p.Pending() != 0 {
		t.Errorf("wake-up markers are not pending tasks, got %d pending", p.Pending())
	}
	if n := p.ClearPending(); n != 0 {
		t.Errorf("wake-up markers must not count as cleared tasks, got %d", n)
	}
	if p.queue.Size() != 1 {
		t.Errorf("wake-up marker should be put back, got %d queued", p.queue.Size())
	}
	if p.Pending() != 0 {
		t.Errorf("expected 0 pending after clear, got %d", p.Pending())
	}

	close(release)

	select {
	case err := <-stopped:
		if err != nil {
			t.Errorf("unexpected stop error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Stop hung after ClearPending removed the wake-up marker")
	}
}
