package pool

import (
	"runtime"
	"time"

	"github.com/utkarsh5026/threadpool/internal/algorithms"
	"golang.org/x/time/rate"
)

// WorkerPoolOption is a functional option for configuring the worker pool.
type WorkerPoolOption func(*workerPoolConfig)

type workerPoolConfig struct {
	workerCount int
	pinThreads  bool
	rateLimiter *rate.Limiter
	metrics     *Metrics

	maxAttempts  int
	initialDelay time.Duration
	backoffType  algorithms.BackoffType
	maxDelay     time.Duration
	jitterFactor float64
	backoff      algorithms.BackoffStrategy

	beforeTask func(workerID int)
	afterTask  func(workerID int, err error)
}

func newConfig(opts ...WorkerPoolOption) *workerPoolConfig {
	cfg := &workerPoolConfig{
		workerCount: runtime.GOMAXPROCS(0),
		maxAttempts: 1,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.maxAttempts > 1 {
		cfg.backoff = algorithms.NewBackoffStrategy(cfg.backoffType, cfg.initialDelay, cfg.maxDelay, cfg.jitterFactor)
	}
	return cfg
}

// WithWorkerCount sets the number of worker threads started by Start.
// If not specified, defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(count int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithThreadPinning pins each worker's OS thread to a CPU core derived from its
// identity (worker 1 on core 0, worker 2 on core 1, ...). Workers are always
// locked to their own OS thread; this only adds the core restriction, and is a
// no-op on platforms without affinity support.
func WithThreadPinning() WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.pinThreads = true
	}
}

// WithRetryPolicy re-runs tasks that return an error.
// maxAttempts is the total number of runs per task; initialDelay is the pause
// before the first retry, growing according to the backoff strategy (exponential
// unless WithBackoff says otherwise). Panics are never retried.
func WithRetryPolicy(maxAttempts int, initialDelay time.Duration) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if maxAttempts > 0 {
			cfg.maxAttempts = maxAttempts
		}

		if initialDelay > 0 {
			cfg.initialDelay = initialDelay
		}
	}
}

// WithBackoff selects how retry delays grow. maxDelay caps a single pause
// (0 = uncapped); jitterFactor is only used by BackoffJittered.
//
// Example:
//
//	pool.New(
//	    pool.WithRetryPolicy(5, 10*time.Millisecond),
//	    pool.WithBackoff(pool.BackoffJittered, time.Second, 0.2),
//	)
func WithBackoff(backoffType BackoffType, maxDelay time.Duration, jitterFactor float64) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.backoffType = backoffType
		cfg.maxDelay = maxDelay
		cfg.jitterFactor = jitterFactor
	}
}

// WithRateLimit caps how many tasks the whole pool starts per second.
// tasksPerSecond specifies the sustained rate and burst how many tasks may start
// back to back. Workers wait for a token before running each task.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithMetrics records pool activity into m. See NewMetrics.
func WithMetrics(m *Metrics) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.metrics = m
	}
}

// WithBeforeTask registers a hook called on the worker thread right before it
// runs a task. Panics raised by the hook are swallowed.
func WithBeforeTask(fn func(workerID int)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.beforeTask = fn
	}
}

// WithAfterTask registers a hook called on the worker thread after each task
// with the task's final error (nil on success). Panics raised by the hook are
// swallowed.
func WithAfterTask(fn func(workerID int, err error)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.afterTask = fn
	}
}
