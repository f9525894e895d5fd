package fractal

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/utkarsh5026/threadpool/pool"
)

// WorkerStats accumulates what one worker rendered. Each worker only writes
// its own slot.
type WorkerStats struct {
	Regions int
	Pixels  int
	Busy    time.Duration
}

// FrameStats summarizes a completed frame.
type FrameStats struct {
	Params     Params
	Iterations int
	Regions    int
	Elapsed    time.Duration
}

// Renderer draws frames on a worker pool. Workers render into a private work
// image and post each finished region to an upload queue; Present copies the
// posted regions into the display image on the caller's goroutine.
//
// A Renderer is driven from a single goroutine.
type Renderer struct {
	pool    *pool.WorkerPool
	regions []Region
	work    *image.RGBA
	display *image.RGBA
	uploads *pool.CallbackQueue
	stats   *pool.Storage[WorkerStats]

	params   Params
	inflight []*pool.Future[struct{}]
	started  time.Time
}

// NewRenderer prepares a renderer for width x height frames split into
// cols x rows regions. Per-worker statistics are sized from p's current
// WorkerCount.
func NewRenderer(p *pool.WorkerPool, width, height, cols, rows int) *Renderer {
	bounds := image.Rect(0, 0, width, height)
	return &Renderer{
		pool:    p,
		regions: Partition(width, height, cols, rows),
		work:    image.NewRGBA(bounds),
		display: image.NewRGBA(bounds),
		uploads: pool.NewCallbackQueue(),
		stats:   pool.NewStorage[WorkerStats](p, nil),
	}
}

// Submit starts rendering params and returns one future per region. Work
// still queued for a previous frame is dropped first, and regions already
// being rendered are allowed to finish so no two tasks write the same pixels.
func (r *Renderer) Submit(params Params) []*pool.Future[struct{}] {
	r.pool.ClearPending()
	for _, f := range r.inflight {
		<-f.Done()
	}
	// Uploads from the previous frame read the work image; flush them before
	// it is overwritten.
	r.uploads.RunPending()

	params.Width = r.work.Rect.Dx()
	params.Height = r.work.Rect.Dy()
	r.params = params
	r.started = time.Now()

	futures := make([]*pool.Future[struct{}], len(r.regions))
	for i, region := range r.regions {
		futures[i] = pool.SubmitWithID(r.pool, func(workerID int) (struct{}, error) {
			start := time.Now()
			RenderRegion(r.work, params, region)

			stats := r.stats.Get(workerID)
			stats.Regions++
			stats.Pixels += region.Pixels()
			stats.Busy += time.Since(start)

			r.uploads.Post(func() {
				draw.Draw(r.display, region.Rect(), r.work, region.Rect().Min, draw.Src)
			})
			return struct{}{}, nil
		})
	}

	r.inflight = futures
	return futures
}

// Ready reports, without blocking, whether every region of the current frame
// has finished.
func (r *Renderer) Ready() bool {
	return FuturesReady(r.inflight)
}

// Present copies every finished region into the display image and returns how
// many were copied.
func (r *Renderer) Present() int {
	return r.uploads.RunPending()
}

// Render submits params and waits for the whole frame, presenting it before
// returning. It fails if ctx ends first or a region was dropped.
func (r *Renderer) Render(ctx context.Context, params Params) (FrameStats, error) {
	futures := r.Submit(params)

	for i, f := range futures {
		if _, err := f.GetWithContext(ctx); err != nil {
			return FrameStats{}, fmt.Errorf("region %d: %w", i, err)
		}
	}
	r.Present()

	return FrameStats{
		Params:     r.params,
		Iterations: r.params.Iterations(),
		Regions:    len(futures),
		Elapsed:    time.Since(r.started),
	}, nil
}

// Display returns the image frames are presented into.
func (r *Renderer) Display() *image.RGBA {
	return r.display
}

// Regions returns the region layout.
func (r *Renderer) Regions() []Region {
	return r.regions
}

// WorkerStats returns a copy of the per-worker counters indexed by identity.
// Only call it while no frame is rendering.
func (r *Renderer) WorkerStats() []WorkerStats {
	out := make([]WorkerStats, r.stats.Len())
	r.stats.Each(func(id int, s *WorkerStats) {
		out[id] = *s
	})
	return out
}

// FuturesReady reports whether every future has resolved, without blocking.
// Abandoned futures count as resolved.
func FuturesReady[R any](futures []*pool.Future[R]) bool {
	for _, f := range futures {
		if !f.IsReady() {
			return false
		}
	}
	return true
}
