package pool_test

import (
	"errors"
	"fmt"
	"sort"

	"github.com/utkarsh5026/threadpool/pool"
)

func Example() {
	p := pool.New(pool.WithWorkerCount(4))
	if err := p.Start(); err != nil {
		panic(err)
	}
	defer p.Stop()

	futures := make([]*pool.Future[int], 10)
	for i := range futures {
		futures[i] = pool.Submit(p, func() int { return i * i })
	}

	squares := make([]int, 0, len(futures))
	for _, f := range futures {
		v, _ := f.Get()
		squares = append(squares, v)
	}
	sort.Ints(squares)
	fmt.Println(squares)
	// Output: [0 1 4 9 16 25 36 49 64 81]
}

func ExampleWorkerPool_ClearPending() {
	p := pool.New(pool.WithWorkerCount(2))

	// Nothing runs before Start, so both tasks are still queued.
	a := pool.Submit(p, func() string { return "a" })
	b := pool.Submit(p, func() string { return "b" })

	fmt.Println("cleared:", p.ClearPending())

	_, errA := a.Get()
	_, errB := b.Get()
	fmt.Println(errors.Is(errA, pool.ErrAbandoned), errors.Is(errB, pool.ErrAbandoned))
	// Output:
	// cleared: 2
	// true true
}

func ExampleSubmitWithID() {
	p := pool.New(pool.WithWorkerCount(3))
	counts := pool.NewStorage[int](p, nil)
	if err := p.Start(); err != nil {
		panic(err)
	}

	for range 30 {
		pool.SubmitWithID(p, func(id int) (struct{}, error) {
			*counts.Get(id)++
			return struct{}{}, nil
		})
	}
	// Stop runs everything already queued before returning.
	_ = p.Stop()

	total := 0
	counts.Each(func(_ int, n *int) { total += *n })
	fmt.Println("tasks run:", total)
	// Output: tasks run: 30
}

func ExampleCallbackQueue() {
	p := pool.New(pool.WithWorkerCount(2))
	uploads := pool.NewCallbackQueue()
	if err := p.Start(); err != nil {
		panic(err)
	}

	var results []int
	for i := range 3 {
		pool.Execute(p, func() {
			uploads.Post(func() { results = append(results, i*10) })
		})
	}
	_ = p.Stop()

	uploads.RunPending()
	sort.Ints(results)
	fmt.Println(results)
	// Output: [0 10 20]
}
