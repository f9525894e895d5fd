//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCore pins the current OS thread to a specific CPU core.
// Must be called after runtime.LockOSThread().
func pinToCore(cpuID int) error {
	numCPU := runtime.NumCPU()
	if cpuID < 0 || cpuID >= numCPU {
		cpuID = ((cpuID % numCPU) + numCPU) % numCPU
	}

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpuID)

	return unix.SchedSetaffinity(0, &mask) // 0 = current thread
}

// ThreadID returns the kernel id of the calling OS thread.
func ThreadID() (int, bool) {
	return unix.Gettid(), true
}

// LockWorkerThread wires the calling goroutine to its OS thread for the rest of
// the worker's life and, when pin is set, restricts that thread to one core
// chosen from workerID. Pinning failures are ignored; the thread stays locked.
// The returned function undoes the lock and must be deferred.
func LockWorkerThread(workerID int, pin bool) func() {
	runtime.LockOSThread()
	if pin {
		_ = pinToCore(workerID - 1)
	}

	return runtime.UnlockOSThread
}
