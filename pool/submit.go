package pool

import "github.com/utkarsh5026/threadpool/internal/types"

// SubmitWithID queues fn and returns a Future for its result without waiting
// for a worker. fn receives the identity of the worker running it, which is
// the portable way to index a Storage.
//
// An error returned by fn, or a panic inside it, is delivered through the
// Future; the worker keeps running. Errors are retried when the pool was
// built with WithRetryPolicy.
//
// Tasks may be submitted before Start; they wait in the queue until workers
// exist. Panics if fn is nil.
//
// Example:
//
//	stats := pool.NewStorage(p, func(int) Counter { return Counter{} })
//	f := pool.SubmitWithID(p, func(id int) (int, error) {
//	    stats.Get(id).Hits++
//	    return id, nil
//	})
func SubmitWithID[R any](p *WorkerPool, fn func(workerID int) (R, error)) *Future[R] {
	if fn == nil {
		panic("pool: nil task function")
	}

	task, future := types.NewTask[R](retrying[R](p.conf, fn))
	p.enqueue(task)
	return future
}

// Submit queues fn and returns a Future for its value.
//
// Example:
//
//	futures := make([]*pool.Future[int], 100)
//	for i := range futures {
//	    futures[i] = pool.Submit(p, func() int { return i * i })
//	}
func Submit[R any](p *WorkerPool, fn func() R) *Future[R] {
	if fn == nil {
		panic("pool: nil task function")
	}

	return SubmitWithID(p, func(int) (R, error) {
		return fn(), nil
	})
}

// SubmitErr queues a task that can fail. The error surfaces from Future.Get.
func SubmitErr[R any](p *WorkerPool, fn func() (R, error)) *Future[R] {
	if fn == nil {
		panic("pool: nil task function")
	}

	return SubmitWithID(p, func(int) (R, error) {
		return fn()
	})
}

// SubmitArg queues fn(arg). arg is copied when SubmitArg is called, so the
// caller may reuse or discard its variable immediately. To let the task see
// later changes, pass a pointer explicitly.
func SubmitArg[A, R any](p *WorkerPool, fn func(A) R, arg A) *Future[R] {
	if fn == nil {
		panic("pool: nil task function")
	}

	return SubmitWithID(p, func(int) (R, error) {
		return fn(arg), nil
	})
}

// Execute queues a task with no result. The Future only signals completion,
// failure (panic) or abandonment.
func Execute(p *WorkerPool, fn func()) *Future[struct{}] {
	if fn == nil {
		panic("pool: nil task function")
	}

	return SubmitWithID(p, func(int) (struct{}, error) {
		fn()
		return struct{}{}, nil
	})
}
