package pool

import (
	"runtime"
	"sync"

	"github.com/utkarsh5026/threadpool/internal/cpu"
)

// MainIdentity is the identity of the thread driving the pool. Workers are
// numbered from 1.
const MainIdentity = 0

// threadRegistry maps OS thread ids to pool identities. Entries are added by a
// thread for itself once it is locked to its goroutine, and removed before the
// lock is released.
type threadRegistry struct {
	mu  sync.RWMutex
	ids map[int]int
}

func newThreadRegistry() *threadRegistry {
	return &threadRegistry{ids: make(map[int]int)}
}

func (r *threadRegistry) registerCurrent(identity int) {
	tid, ok := cpu.ThreadID()
	if !ok {
		return
	}

	r.mu.Lock()
	r.ids[tid] = identity
	r.mu.Unlock()
}

func (r *threadRegistry) unregisterCurrent() {
	tid, ok := cpu.ThreadID()
	if !ok {
		return
	}

	r.mu.Lock()
	delete(r.ids, tid)
	r.mu.Unlock()
}

func (r *threadRegistry) lookupCurrent() (int, bool) {
	tid, ok := cpu.ThreadID()
	if !ok {
		return 0, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, found := r.ids[tid]
	return identity, found
}

// Identity returns the pool identity of the calling thread: 1..WorkerCount
// inside a task, MainIdentity on a thread set up with RegisterMainThread.
// ok is false on any other thread, and always false on platforms where
// thread ids are unavailable (macOS). Code that must be portable should use
// SubmitWithID and pass the identity along explicitly.
func (p *WorkerPool) Identity() (identity int, ok bool) {
	return p.threads.lookupCurrent()
}

// RegisterMainThread locks the calling goroutine to its OS thread and maps that
// thread to MainIdentity, so Identity and Storage.Current work from it.
// Call the returned function to undo both.
//
// Example:
//
//	release := p.RegisterMainThread()
//	defer release()
//	ctx := storage.Current() // slot 0
func (p *WorkerPool) RegisterMainThread() (release func()) {
	runtime.LockOSThread()
	p.threads.registerCurrent(MainIdentity)

	return func() {
		p.threads.unregisterCurrent()
		runtime.UnlockOSThread()
	}
}
