package geom

import "math"

// CubicBez is a cubic Bézier segment defined by four control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at parameter t using the Bernstein basis:
// point(t) = Σᵢ C(3,i) tⁱ(1−t)^(3−i) · pᵢ. At t=0 and t=1 the weights
// degenerate to select P0 and P3 exactly.
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	return Point{
		X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X + b3*c.P3.X,
		Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y + b3*c.P3.Y,
	}
}

// Sample evaluates the curve at n parameter values evenly spaced over
// [0, 1], endpoints included.
func (c CubicBez) Sample(n int) []Point {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Point{c.Eval(0)}
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = c.Eval(float64(i) / float64(n-1))
	}
	return points
}

// SegmentConfig tunes segment construction. Zero fields select the
// defaults (radius factor 0.3, 100 samples).
type SegmentConfig struct {
	// RadiusFactor scales the control-point offset by the euclidean
	// distance between the segment endpoints.
	RadiusFactor float64
	// SampleCount is the number of points evaluated along the curve.
	SampleCount int
}

// Segment is a cubic Bézier segment between two points with prescribed
// entry and exit tangent angles. Values are immutable after
// construction.
type Segment struct {
	P1     Point
	P2     Point
	Angle1 float64
	Angle2 float64

	// Bez holds the derived control points: Bez.P0 == P1, Bez.P3 == P2,
	// and the interior points are offset from the endpoints along the
	// tangent directions.
	Bez CubicBez

	// Curve is the dense sample along the segment.
	Curve []Point
}

// NewSegment builds a segment from p1 to p2 that leaves p1 tangent to
// angle1 and arrives at p2 tangent to angle2. The second interior
// control point is offset along the reverse of angle2 so the curve
// approaches p2 from the prescribed direction. Coincident endpoints
// yield a zero-length curve.
func NewSegment(p1, p2 Point, angle1, angle2 float64, cfg SegmentConfig) Segment {
	if cfg.RadiusFactor == 0 {
		cfg.RadiusFactor = 0.3
	}
	if cfg.SampleCount == 0 {
		cfg.SampleCount = 100
	}
	r := cfg.RadiusFactor * p1.Distance(p2)
	bez := CubicBez{
		P0: p1,
		P1: p1.Translate(r*math.Cos(angle1), r*math.Sin(angle1)),
		P2: p2.Translate(r*math.Cos(angle2+math.Pi), r*math.Sin(angle2+math.Pi)),
		P3: p2,
	}
	return Segment{
		P1:     p1,
		P2:     p2,
		Angle1: angle1,
		Angle2: angle2,
		Bez:    bez,
		Curve:  bez.Sample(cfg.SampleCount),
	}
}
