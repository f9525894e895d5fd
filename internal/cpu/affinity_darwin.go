//go:build darwin

package cpu

import (
	"runtime"
)

// ThreadID is unavailable on macOS; callers must pass identities explicitly.
func ThreadID() (int, bool) {
	return 0, false
}

// LockWorkerThread locks the goroutine to an OS thread.
// CPU pinning is not available on macOS, so pin is ignored.
func LockWorkerThread(workerID int, pin bool) func() {
	runtime.LockOSThread()

	return runtime.UnlockOSThread
}
