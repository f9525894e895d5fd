package pool

import (
	"time"

	"github.com/utkarsh5026/threadpool/internal/types"
)

// retrying wraps fn so an error result is retried according to the pool's
// retry policy. With a single attempt fn is returned unchanged.
func retrying[R any](cfg *workerPoolConfig, fn types.TaskFunc[R]) types.TaskFunc[R] {
	if cfg.maxAttempts <= 1 {
		return fn
	}

	return func(workerID int) (R, error) {
		var (
			result R
			err    error
		)
		for attempt := range cfg.maxAttempts {
			if attempt > 0 && cfg.backoff != nil {
				if delay := cfg.backoff.NextDelay(attempt - 1); delay > 0 {
					time.Sleep(delay)
				}
			}

			result, err = fn(workerID)
			if err == nil {
				return result, nil
			}
		}
		return result, err
	}
}

// callHook runs a user hook, discarding any panic so a faulty hook cannot
// kill the worker that called it.
func callHook(hook func()) {
	defer func() {
		_ = recover()
	}()
	hook()
}
