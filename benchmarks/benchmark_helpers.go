package benchmarks

import (
	"runtime"
	"testing"
	"time"

	"github.com/utkarsh5026/threadpool/pool"
)

// poolConfig defines a benchmark configuration for a pool
type poolConfig struct {
	name string
	opts []pool.WorkerPoolOption
}

// getAllConfigs returns the pool configurations to benchmark
func getAllConfigs(workerCount int) []poolConfig {
	return []poolConfig{
		{
			name: "Plain",
			opts: []pool.WorkerPoolOption{
				pool.WithWorkerCount(workerCount),
			},
		},
		{
			name: "Pinned",
			opts: []pool.WorkerPoolOption{
				pool.WithWorkerCount(workerCount),
				pool.WithThreadPinning(),
			},
		},
		{
			name: "Metrics",
			opts: []pool.WorkerPoolOption{
				pool.WithWorkerCount(workerCount),
				pool.WithMetrics(pool.NewMetrics("bench", nil)),
			},
		},
	}
}

// runConfigBenchmark runs a benchmark function for all configurations
func runConfigBenchmark(b *testing.B, configs []poolConfig, benchFunc func(b *testing.B, c poolConfig)) {
	for _, c := range configs {
		b.Run(c.name, func(b *testing.B) {
			benchFunc(b, c)
		})
	}
}

// startPool starts a pool for the benchmark and stops it afterwards
func startPool(b *testing.B, opts ...pool.WorkerPoolOption) *pool.WorkerPool {
	b.Helper()
	p := pool.New(opts...)
	if err := p.Start(); err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = p.Stop() })
	return p
}

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// =============================================================================
// Benchmark Workload Generators
// =============================================================================

// cpuBoundWork simulates a CPU-intensive operation
func cpuBoundWork(iterations, task int) func() int {
	return func() int {
		result := 0
		for i := range iterations {
			result += i * task
		}
		return result
	}
}

// ioBoundWork simulates an I/O operation with a delay
func ioBoundWork(delay time.Duration, task int) func() int {
	return func() int {
		time.Sleep(delay)
		return task * 2
	}
}
