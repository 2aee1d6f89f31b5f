package heatmap

import (
	randv2 "math/rand/v2"

	"github.com/mrsinham/thermalforge/internal/geom"
)

// EdgeConfig tunes edge rasterization. Zero fields select the defaults
// (intensity 128, 3 points per edge, curve defaults from geom).
type EdgeConfig struct {
	// NumEdges is the number of closed curves to draw.
	NumEdges int
	// EdgeIntensity is the value written at every curve pixel.
	EdgeIntensity float64
	// NumPoints is the number of random points each curve is fitted
	// through.
	NumPoints int

	// Curve tunables, passed through to the fitter.
	MinDistance       float64
	Radius            float64
	Edginess          float64
	SamplesPerSegment int
}

// RasterizeEdges draws NumEdges random closed curves onto a fresh
// width×height buffer. Each curve is fitted through points sampled in
// the unit square and scaled by the canvas width; every curve sample
// is truncated to integer coordinates and, when inside the canvas,
// assigned EdgeIntensity. Later writes overwrite earlier ones, so
// overlapping curves do not accumulate. No blur is applied here; the
// compositor blurs the combined edge map once.
func RasterizeEdges(rng *randv2.Rand, width, height int, cfg EdgeConfig) (*Buffer, error) {
	if cfg.EdgeIntensity == 0 {
		cfg.EdgeIntensity = 128
	}
	if cfg.NumPoints == 0 {
		cfg.NumPoints = 3
	}

	buf := NewBuffer(width, height)
	for e := 0; e < cfg.NumEdges; e++ {
		points, err := geom.SamplePoints(rng, cfg.NumPoints, float64(width), cfg.MinDistance, 0)
		if err != nil {
			return nil, err
		}
		curve := geom.FitClosedCurve(points, geom.CurveConfig{
			Radius:      cfg.Radius,
			Edginess:    cfg.Edginess,
			SampleCount: cfg.SamplesPerSegment,
		})
		for _, p := range curve.Points() {
			xi, yi := int(p.X), int(p.Y)
			if xi >= 0 && xi < width && yi >= 0 && yi < height {
				buf.Set(xi, yi, cfg.EdgeIntensity)
			}
		}
	}
	return buf, nil
}
