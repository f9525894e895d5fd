package pool

import (
	"testing"
	"time"

	"github.com/utkarsh5026/threadpool/internal/cpu"
)

// poolConfig defines a test configuration for a pool
type poolConfig struct {
	name string
	opts []WorkerPoolOption
}

// getAllConfigs returns the pool configurations every behavioural test runs
// against. Each call builds fresh options so metrics are not shared.
func getAllConfigs(workerCount int) []poolConfig {
	return []poolConfig{
		{
			name: "Plain",
			opts: []WorkerPoolOption{
				WithWorkerCount(workerCount),
			},
		},
		{
			name: "Pinned",
			opts: []WorkerPoolOption{
				WithWorkerCount(workerCount),
				WithThreadPinning(),
			},
		},
		{
			name: "Metrics",
			opts: []WorkerPoolOption{
				WithWorkerCount(workerCount),
				WithMetrics(NewMetrics("test", nil)),
			},
		},
		{
			name: "Hooks",
			opts: []WorkerPoolOption{
				WithWorkerCount(workerCount),
				WithBeforeTask(func(int) {}),
				WithAfterTask(func(int, error) {}),
			},
		},
	}
}

// runConfigTest runs a test function against all pool configurations
func runConfigTest(t *testing.T, testFunc func(t *testing.T, c poolConfig), workerCount int) {
	t.Helper()
	for _, c := range getAllConfigs(workerCount) {
		t.Run(c.name, func(t *testing.T) {
			testFunc(t, c)
		})
	}
}

// startPool creates and starts a pool, stopping it when the test ends.
func startPool(t *testing.T, opts ...WorkerPoolOption) *WorkerPool {
	t.Helper()
	p := New(opts...)
	if err := p.Start(); err != nil {
		t.Fatalf("failed to start pool: %v", err)
	}
	t.Cleanup(func() {
		if p.Running() {
			_ = p.Stop()
		}
	})
	return p
}

// waitFor polls cond until it holds or the timeout expires.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before timeout")
		}
		time.Sleep(time.Millisecond)
	}
}

func threadIDsSupported() bool {
	_, ok := cpu.ThreadID()
	return ok
}
