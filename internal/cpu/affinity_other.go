//go:build !linux && !darwin && !windows

package cpu

import "runtime"

// ThreadID is unavailable on this platform.
func ThreadID() (int, bool) {
	return 0, false
}

// LockWorkerThread locks the goroutine to an OS thread; pin is ignored.
func LockWorkerThread(workerID int, pin bool) func() {
	runtime.LockOSThread()

	return runtime.UnlockOSThread
}
