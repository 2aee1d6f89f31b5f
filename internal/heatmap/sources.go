package heatmap

import "fmt"

// StampSource renders a single heat source onto a fresh width×height
// buffer: a filled square of side size centered at (x, y), softened by
// a Gaussian blur of standard deviation sigma.
//
// The filled region [y−size/2, y+size/2] × [x−size/2, x+size/2]
// (inclusive) must lie inside the canvas. Callers place sources with a
// margin of at least size from every edge; a stamp outside the canvas
// is a precondition violation reported as an error, not recovered.
func StampSource(width, height, x, y int, intensity float64, size int, sigma float64) (*Buffer, error) {
	half := size / 2
	if x-half < 0 || x+half >= width || y-half < 0 || y+half >= height {
		return nil, fmt.Errorf("heatmap: source of size %d at (%d, %d) exceeds %dx%d canvas", size, x, y, width, height)
	}

	buf := NewBuffer(width, height)
	for yy := y - half; yy <= y+half; yy++ {
		for xx := x - half; xx <= x+half; xx++ {
			buf.Set(xx, yy, intensity)
		}
	}
	return GaussianBlur(buf, sigma), nil
}
