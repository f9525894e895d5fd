package pool

import "fmt"

// Storage keeps one value per pool identity: slot 0 for the driving thread and
// slots 1..WorkerCount for the workers. Each slot is only ever touched by the
// thread that owns its identity, so no locking is needed.
//
// The slot count is fixed from the pool's WorkerCount when the storage is
// created. Build a new Storage after SetWorkerCount.
type Storage[T any] struct {
	pool  *WorkerPool
	slots []T
}

// NewStorage allocates WorkerCount+1 slots, filling slot id with init(id).
// A nil init leaves every slot at its zero value.
//
// Example:
//
//	buffers := pool.NewStorage(p, func(id int) []byte {
//	    return make([]byte, 64*1024)
//	})
func NewStorage[T any](p *WorkerPool, init func(id int) T) *Storage[T] {
	slots := make([]T, p.WorkerCount()+1)
	if init != nil {
		for id := range slots {
			slots[id] = init(id)
		}
	}

	return &Storage[T]{pool: p, slots: slots}
}

// Get returns the slot for identity id. Panics if id is out of range.
func (s *Storage[T]) Get(id int) *T {
	if id < 0 || id >= len(s.slots) {
		panic(fmt.Sprintf("pool: storage identity %d out of range [0, %d)", id, len(s.slots)))
	}
	return &s.slots[id]
}

// Current returns the slot of the calling thread. It must be called from a
// task running on the pool or from a thread set up with RegisterMainThread;
// anywhere else it panics.
func (s *Storage[T]) Current() *T {
	id, ok := s.pool.Identity()
	if !ok {
		panic("pool: Storage.Current called from a thread the pool does not own")
	}
	return s.Get(id)
}

// Len returns the number of slots, WorkerCount+1 at creation time.
func (s *Storage[T]) Len() int {
	return len(s.slots)
}

// Each calls fn for every slot in identity order. Only call it while no task
// that touches the storage is running, typically after Stop or once every
// relevant Future has resolved.
func (s *Storage[T]) Each(fn func(id int, v *T)) {
	for id := range s.slots {
		fn(id, &s.slots[id])
	}
}
