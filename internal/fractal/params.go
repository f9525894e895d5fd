// Package fractal renders the Mandelbrot set region by region on a worker pool.
package fractal

import "math"

const (
	// DomainRange is the width of the complex plane shown at zoom 1.
	DomainRange = 4.0
	// StartIterations is the iteration depth at zoom 1.
	StartIterations = 20
	// ZoomSensitivity scales one scroll step.
	ZoomSensitivity = 2.0
)

// Params describes one frame: the image size and which part of the complex
// plane it shows.
type Params struct {
	Width    int
	Height   int
	CenterRe float64
	CenterIm float64
	Zoom     float64
}

// Iterations returns the escape-time depth for the current zoom. It grows
// logarithmically so deep zooms stay affordable.
func (p Params) Iterations() int {
	return int(math.Log(math.E+p.Zoom-1) * StartIterations)
}

// Range returns the width (and height) of the visible square of the plane.
func (p Params) Range() float64 {
	return DomainRange / p.Zoom
}

// PointAt maps pixel (x, y) to its point on the complex plane.
func (p Params) PointAt(x, y float64) complex128 {
	r := p.Range()
	minRe := p.CenterRe - r/2
	minIm := p.CenterIm - r/2
	return complex(
		minRe+x/span(p.Width)*r,
		minIm+y/span(p.Height)*r,
	)
}

// ZoomAt recenters the view on pixel (x, y) and applies steps scroll steps:
// positive steps zoom in by steps*ZoomSensitivity, negative steps zoom out by
// the same factor.
func (p Params) ZoomAt(x, y, steps float64) Params {
	c := p.PointAt(x, y)
	p.CenterRe, p.CenterIm = real(c), imag(c)

	switch {
	case steps > 0:
		p.Zoom *= steps * ZoomSensitivity
	case steps < 0:
		p.Zoom /= -steps * ZoomSensitivity
	}
	return p
}

func span(pixels int) float64 {
	if pixels <= 1 {
		return 1
	}
	return float64(pixels - 1)
}
