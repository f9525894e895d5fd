package fractal

import (
	"image"
	"image/color"
)

// Region is a rectangle of pixels rendered by one task.
type Region struct {
	X, Y          int
	Width, Height int
}

// Rect returns the region as an image rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Pixels returns the number of pixels in the region.
func (r Region) Pixels() int {
	return r.Width * r.Height
}

// Partition splits a width x height image into cols x rows regions in row
// order. When the size does not divide evenly, the last column and the last
// row absorb the remainder. cols and rows are clamped to the image size.
func Partition(width, height, cols, rows int) []Region {
	if width <= 0 || height <= 0 {
		return nil
	}
	cols = min(max(cols, 1), width)
	rows = min(max(rows, 1), height)

	regionWidth := width / cols
	regionHeight := height / rows

	regions := make([]Region, 0, cols*rows)
	for i := range rows {
		y := i * regionHeight
		h := regionHeight
		if i == rows-1 {
			h = height - y
		}

		for j := range cols {
			x := j * regionWidth
			w := regionWidth
			if j == cols-1 {
				w = width - x
			}
			regions = append(regions, Region{X: x, Y: y, Width: w, Height: h})
		}
	}
	return regions
}

// Escape iterates z = z² + c from zero. It returns the iteration at which |z|
// exceeded 2, or (maxIter, false) if it never did.
func Escape(c complex128, maxIter int) (iteration int, diverges bool) {
	var z complex128
	for iteration = 1; iteration <= maxIter; iteration++ {
		z = z*z + c
		if re, im := real(z), imag(z); re*re+im*im > 4 {
			return iteration, true
		}
	}
	return maxIter, false
}

// Shade colors an escape result: points in the set are black, divergent points
// get a red channel proportional to how long they took to escape.
func Shade(iteration, maxIter int, diverges bool) color.RGBA {
	if !diverges || maxIter <= 0 {
		return color.RGBA{A: 0xff}
	}
	red := float64(iteration) / float64(maxIter) * 255
	return color.RGBA{R: uint8(red), A: 0xff}
}

// RenderRegion colors the pixels of r in img for frame p. Pixels outside the
// image bounds are skipped. Distinct regions touch disjoint pixels, so
// several RenderRegion calls may run concurrently on the same image.
func RenderRegion(img *image.RGBA, p Params, r Region) {
	maxIter := p.Iterations()
	area := r.Rect().Intersect(img.Bounds())

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			iteration, diverges := Escape(p.PointAt(float64(x), float64(y)), maxIter)
			img.SetRGBA(x, y, Shade(iteration, maxIter, diverges))
		}
	}
}
