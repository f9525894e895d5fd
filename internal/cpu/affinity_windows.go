//go:build windows

package cpu

import (
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	getCurrentThread      = kernel32.NewProc("GetCurrentThread")
	getCurrentThreadID    = kernel32.NewProc("GetCurrentThreadId")
)

// pinToCore pins the current OS thread to a specific CPU core.
// Must be called after runtime.LockOSThread().
func pinToCore(cpuID int) error {
	numCPU := runtime.NumCPU()
	if cpuID < 0 || cpuID >= numCPU {
		cpuID = ((cpuID % numCPU) + numCPU) % numCPU
	}

	handle, _, _ := getCurrentThread.Call()

	// Bit N = CPU N.
	mask := uintptr(1 << cpuID)

	prevMask, _, err := setThreadAffinityMask.Call(handle, mask)
	if prevMask == 0 {
		return err
	}
	return nil
}

// ThreadID returns the id of the calling OS thread.
func ThreadID() (int, bool) {
	id, _, _ := getCurrentThreadID.Call()
	return int(id), true
}

// LockWorkerThread locks the goroutine to an OS thread and, when pin is set,
// restricts it to one core chosen from workerID.
// Returns a cleanup function that should be deferred.
func LockWorkerThread(workerID int, pin bool) func() {
	runtime.LockOSThread()
	if pin {
		_ = pinToCore(workerID - 1)
	}

	return runtime.UnlockOSThread
}
