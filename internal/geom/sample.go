package geom

import (
	"cmp"
	"fmt"
	"math"
	randv2 "math/rand/v2"
	"slices"
)

// Sampling defaults. A zero value in the corresponding SamplePoints
// argument selects the default.
const (
	DefaultMaxRetries = 200
)

// SortCCW returns the points ordered counter-clockwise around their
// centroid. The input is not modified.
//
// The angle is computed as atan2(dx, dy), not the conventional
// atan2(dy, dx). The swapped argument order sets the rotational
// direction of assembled loops and downstream imagery depends on it,
// so it must not be "fixed".
func SortCCW(points []Point) []Point {
	c := Centroid(points)
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b Point) int {
		return cmp.Compare(math.Atan2(a.X-c.X, a.Y-c.Y), math.Atan2(b.X-c.X, b.Y-c.Y))
	})
	return sorted
}

// SamplePoints draws count independent uniform points in the unit square
// and scales them by scale. The sampler resamples until every consecutive
// pair of the counter-clockwise-sorted set is at least minDistance apart,
// giving up after maxRetries attempts; the spacing constraint is
// best-effort and exhausting the budget is not an error.
//
// minDistance defaults to 0.7/count when non-positive, maxRetries to
// DefaultMaxRetries. count must be at least 2; fewer points have no
// usable geometry for curve fitting.
func SamplePoints(rng *randv2.Rand, count int, scale, minDistance float64, maxRetries int) ([]Point, error) {
	if count < 2 {
		return nil, fmt.Errorf("geom: sample of %d points is degenerate, need at least 2", count)
	}
	if minDistance <= 0 {
		minDistance = 0.7 / float64(count)
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		points := make([]Point, count)
		for i := range points {
			points[i] = Point{X: rng.Float64(), Y: rng.Float64()}
		}
		if attempt >= maxRetries || minConsecutiveSpacing(SortCCW(points)) >= minDistance {
			for i := range points {
				points[i] = points[i].Scale(scale)
			}
			return points, nil
		}
	}
}

// minConsecutiveSpacing returns the smallest distance between
// consecutive points. The wrap-around pair is not considered.
func minConsecutiveSpacing(points []Point) float64 {
	spacing := math.Inf(1)
	for i := 0; i < len(points)-1; i++ {
		if d := points[i].Distance(points[i+1]); d < spacing {
			spacing = d
		}
	}
	return spacing
}
