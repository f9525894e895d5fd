// Package pool provides a fixed-size worker-thread pool with typed futures.
//
// A WorkerPool owns a FIFO queue and a set of long-lived workers. Each worker
// is locked to its own OS thread and has a stable identity: 1..WorkerCount for
// workers, 0 (MainIdentity) for the thread driving the pool. Submitting a task
// never blocks; the caller gets a Future and reads the result when it needs it.
//
// # Basic Usage
//
//	p := pool.New(pool.WithWorkerCount(4))
//	if err := p.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Stop()
//
//	futures := make([]*pool.Future[int], 100)
//	for i := range futures {
//	    futures[i] = pool.Submit(p, func() int { return i * i })
//	}
//	for _, f := range futures {
//	    v, err := f.Get()
//	    ...
//	}
//
// # Submitting Work
//
// Go methods cannot take type parameters, so submission is a family of
// package functions:
//
//   - Submit: func() R
//   - SubmitErr: func() (R, error)
//   - SubmitArg: func(A) R with the argument copied at submit time
//   - SubmitWithID: func(workerID int) (R, error), the base form
//   - Execute: func() with no result
//
// Errors and panics inside a task end up in its Future. A panic is reported
// as a *PanicError carrying the recovered value and stack trace.
//
// # Lifecycle
//
// Start spawns the workers. Stop lets them finish everything queued before it
// was called, joins them, and returns the pool to its initial state so Start
// can be called again. ClearPending drops queued work that no worker has
// picked up; the dropped futures report ErrAbandoned. SetWorkerCount may only
// be called while the pool is stopped.
//
// # Per-Worker Storage
//
// Storage gives each identity its own value, e.g. a scratch buffer or a
// thread-affine handle. Index it with the workerID passed to SubmitWithID, or
// call Current from inside a task. Current depends on OS thread ids and is not
// available on macOS.
//
// # Callback Queue
//
// CallbackQueue runs functions posted from workers back on one owning thread:
//
//	uploads := pool.NewCallbackQueue()
//	pool.Execute(p, func() {
//	    tile := render()
//	    uploads.Post(func() { display.Upload(tile) })
//	})
//	...
//	uploads.RunPending() // on the display thread
//
// # Options
//
// Retries with backoff (WithRetryPolicy, WithBackoff), rate limiting
// (WithRateLimit), CPU pinning (WithThreadPinning), hooks (WithBeforeTask,
// WithAfterTask) and Prometheus metrics (WithMetrics) are configured with
// functional options passed to New.
//
// # Debugging
//
// Building with -tags debug logs lifecycle events to stderr.
package pool
