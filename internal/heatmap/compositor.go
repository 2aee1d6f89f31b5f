package heatmap

import (
	"fmt"
	randv2 "math/rand/v2"
)

// sourceMargin keeps stamped sources away from the canvas edges so a
// stamp can never extend outside the buffer.
const sourceMargin = 10

// Options configures a single generation call. DefaultOptions returns
// the standard settings; a zero Options is rejected by Generate
// because zero dimensions are invalid.
type Options struct {
	Width  int
	Height int

	// NumSources is the number of diffuse heat blobs. Zero is valid
	// and yields no source contribution.
	NumSources int
	// NumEdges is the number of curved edge artifacts. Zero is valid.
	NumEdges int

	// EdgeSigma is the blur applied to the combined edge map.
	EdgeSigma float64
	// SourceSigma is the blur applied to each stamped source.
	SourceSigma float64

	// Advanced tunables. Zero fields select the component defaults.
	SourceSize        int
	EdgeIntensity     float64
	NumPoints         int
	MinDistance       float64
	Radius            float64
	Edginess          float64
	SamplesPerSegment int
}

// DefaultOptions returns the standard generation settings: a 256×256
// canvas with 3 sources and 1 edge.
func DefaultOptions() Options {
	return Options{
		Width:       256,
		Height:      256,
		NumSources:  3,
		NumEdges:    1,
		EdgeSigma:   5,
		SourceSigma: 50,
		SourceSize:  5,
	}
}

func (o Options) withDefaults() Options {
	if o.EdgeSigma == 0 {
		o.EdgeSigma = 5
	}
	if o.SourceSigma == 0 {
		o.SourceSigma = 50
	}
	if o.SourceSize == 0 {
		o.SourceSize = 5
	}
	return o
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("heatmap: invalid dimensions %dx%d", o.Width, o.Height)
	}
	if o.NumSources < 0 {
		return fmt.Errorf("heatmap: invalid source count %d", o.NumSources)
	}
	if o.NumEdges < 0 {
		return fmt.Errorf("heatmap: invalid edge count %d", o.NumEdges)
	}
	if o.NumSources > 0 && (o.Width <= 2*sourceMargin || o.Height <= 2*sourceMargin) {
		return fmt.Errorf("heatmap: %dx%d canvas too small to place sources with a %d-pixel margin",
			o.Width, o.Height, sourceMargin)
	}
	return nil
}

// Generate synthesizes one heatmap. Heat sources are stamped at random
// positions with a margin from every edge and accumulated; edge curves
// are rasterized and blurred as one map. Each contribution is
// normalized to [0, 1] independently, the two are summed, and the sum
// is rescaled to [0, 255] and quantized. All-zero contributions pass
// through normalization unchanged, so a run with no sources and no
// edges yields a valid all-zero image.
//
// All randomness flows through rng; the same seed and options produce
// a bit-identical image.
func Generate(rng *randv2.Rand, opts Options) (*Image, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	sources := NewBuffer(opts.Width, opts.Height)
	for i := 0; i < opts.NumSources; i++ {
		x := sourceMargin + rng.IntN(opts.Width-2*sourceMargin)
		y := sourceMargin + rng.IntN(opts.Height-2*sourceMargin)
		intensity := 200 + rng.Float64()*55
		stamp, err := StampSource(opts.Width, opts.Height, x, y, intensity, opts.SourceSize, opts.SourceSigma)
		if err != nil {
			return nil, fmt.Errorf("stamp source %d: %w", i, err)
		}
		sources.Add(stamp)
	}

	edges, err := RasterizeEdges(rng, opts.Width, opts.Height, EdgeConfig{
		NumEdges:          opts.NumEdges,
		EdgeIntensity:     opts.EdgeIntensity,
		NumPoints:         opts.NumPoints,
		MinDistance:       opts.MinDistance,
		Radius:            opts.Radius,
		Edginess:          opts.Edginess,
		SamplesPerSegment: opts.SamplesPerSegment,
	})
	if err != nil {
		return nil, fmt.Errorf("rasterize edges: %w", err)
	}
	edges = GaussianBlur(edges, opts.EdgeSigma)

	sources.Normalize()
	edges.Normalize()

	combined := sources
	combined.Add(edges)
	combined.Normalize()
	combined.Scale(255)
	return combined.Quantize(), nil
}

// NewRand returns the deterministic generator used throughout: a PCG
// source seeded twice with the same value, so equal seeds reproduce
// equal imagery.
func NewRand(seed uint64) *randv2.Rand {
	return randv2.New(randv2.NewPCG(seed, seed))
}
