package geom

import "math"

// CurveConfig tunes closed-curve fitting. Zero fields select the
// defaults (radius 0.2, edginess 0, 100 samples per segment).
type CurveConfig struct {
	// Radius is the control-point offset factor handed to each segment.
	Radius float64
	// Edginess controls corner sharpness. 0 is smoothest; large values
	// pull every vertex tangent towards its outgoing edge direction.
	Edginess float64
	// SampleCount is the number of samples per segment.
	SampleCount int
}

// Vertex is a loop vertex augmented with its blended tangent angle.
type Vertex struct {
	Point
	Angle float64
}

// Curve is a closed piecewise-cubic loop through a point set.
type Curve struct {
	// Segments lists one segment per polygon edge, in loop order.
	Segments []Segment
	// Vertices holds the sorted loop vertices with their tangent
	// angles. The first vertex is repeated at the end to close the
	// loop.
	Vertices []Vertex

	points []Point
}

// Points returns the concatenated samples of all segments.
func (c Curve) Points() []Point {
	return c.points
}

// Coords returns the sample coordinates as separate x and y slices.
func (c Curve) Coords() (xs, ys []float64) {
	xs = make([]float64, len(c.points))
	ys = make([]float64, len(c.points))
	for i, p := range c.points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// FitClosedCurve orders points counter-clockwise around their centroid
// and fits a closed piecewise-cubic loop through them. Each vertex
// tangent blends the outgoing and incoming edge directions; the blend
// weight p = atan(edginess)/π + 0.5 maps edginess ∈ (−∞,∞) to (0, 1).
//
// A point set of n points yields n segments, since the loop wraps the
// first point and the first blended angle onto the end.
func FitClosedCurve(points []Point, cfg CurveConfig) Curve {
	if cfg.Radius == 0 {
		cfg.Radius = 0.2
	}
	p := math.Atan(cfg.Edginess)/math.Pi + 0.5

	loop := SortCCW(points)
	loop = append(loop, loop[0])
	n := len(loop) - 1

	// Outgoing edge directions, normalized into [0, 2π).
	outgoing := make([]float64, n)
	for i := 0; i < n; i++ {
		d := loop[i+1].Sub(loop[i])
		ang := math.Atan2(d.Y, d.X)
		if ang < 0 {
			ang += 2 * math.Pi
		}
		outgoing[i] = ang
	}

	// Blend each vertex's outgoing direction with the incoming one
	// (the previous vertex's outgoing direction). When the two angles
	// straddle the 0/2π discontinuity their gap exceeds π and the
	// naive blend would turn the long way around; the added π flips it
	// back. The correction is exact, not modulo arithmetic.
	angles := make([]float64, n+1)
	for i := 0; i < n; i++ {
		in := outgoing[(i-1+n)%n]
		out := outgoing[i]
		blend := p*out + (1-p)*in
		if math.Abs(in-out) > math.Pi {
			blend += math.Pi
		}
		angles[i] = blend
	}
	angles[n] = angles[0]

	vertices := make([]Vertex, n+1)
	for i := range vertices {
		vertices[i] = Vertex{Point: loop[i], Angle: angles[i]}
	}

	segments := make([]Segment, n)
	var samples []Point
	for i := 0; i < n; i++ {
		segments[i] = NewSegment(loop[i], loop[i+1], angles[i], angles[i+1], SegmentConfig{
			RadiusFactor: cfg.Radius,
			SampleCount:  cfg.SampleCount,
		})
		samples = append(samples, segments[i].Curve...)
	}

	return Curve{Segments: segments, Vertices: vertices, points: samples}
}
