package pool

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestCallbackQueue_RunPending(t *testing.T) {
	t.Run("runs in post order", func(t *testing.T) {
		c := NewCallbackQueue()

		var order []int
		for i := range 3 {
			c.Post(func() { order = append(order, i) })
		}

		if n := c.RunPending(); n != 3 {
			t.Errorf("expected 3 callbacks run, got %d", n)
		}
		if diff := cmp.Diff([]int{0, 1, 2}, order); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
		if c.Len() != 0 {
			t.Errorf("expected empty queue, got %d", c.Len())
		}
	})

	t.Run("reposted callbacks wait for next call", func(t *testing.T) {
		c := NewCallbackQueue()

		var repost func()
		repost = func() { c.Post(repost) }
		c.Post(repost)

		if n := c.RunPending(); n != 1 {
			t.Errorf("expected 1 callback run, got %d", n)
		}
		if c.Len() != 1 {
			t.Errorf("expected the repost to wait, got %d queued", c.Len())
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		c := NewCallbackQueue()
		c.Post(nil)

		if c.Len() != 0 {
			t.Errorf("nil callback should not be queued")
		}
	})
}

func TestCallbackQueue_FromWorkers(t *testing.T) {
	p := startPool(t, WithWorkerCount(4))
	c := NewCallbackQueue()

	results := make(map[int]int)
	futures := make([]*Future[struct{}], 20)
	for i := range futures {
		futures[i] = Execute(p, func() {
			square := i * i
			c.Post(func() { results[i] = square })
		})
	}
	for _, f := range futures {
		if _, err := f.Get(); err != nil {
			t.Fatal(err)
		}
	}

	// Only this goroutine touches results.
	if n := c.RunPending(); n != 20 {
		t.Fatalf("expected 20 callbacks, got %d", n)
	}
	for i := range 20 {
		if results[i] != i*i {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*i)
		}
	}
}

func TestCallbackQueue_RunNextBlocks(t *testing.T) {
	c := NewCallbackQueue()
	ran := make(chan struct{})

	go func() {
		c.RunNext()
		close(ran)
	}()

	select {
	case <-ran:
		t.Fatal("RunNext returned with nothing posted")
	case <-time.After(20 * time.Millisecond):
	}

	c.Post(func() {})

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("RunNext did not wake after Post")
	}
}
