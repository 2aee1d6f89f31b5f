package heatmap

import "math"

// GaussianBlur returns a blurred copy of buf. The blur is isotropic
// and separable: one horizontal and one vertical pass with a kernel of
// radius int(4σ+0.5) and reflected boundaries, matching the filter the
// synthesized imagery was tuned against. A non-positive sigma returns
// an unmodified copy.
func GaussianBlur(buf *Buffer, sigma float64) *Buffer {
	out := NewBuffer(buf.Width, buf.Height)
	copy(out.Data, buf.Data)
	if sigma <= 0 {
		return out
	}

	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2

	// Horizontal pass.
	tmp := NewBuffer(buf.Width, buf.Height)
	for y := 0; y < buf.Height; y++ {
		row := out.Data[y*buf.Width : (y+1)*buf.Width]
		for x := 0; x < buf.Width; x++ {
			var acc float64
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * row[reflect(x+k, buf.Width)]
			}
			tmp.Set(x, y, acc)
		}
	}

	// Vertical pass.
	for x := 0; x < buf.Width; x++ {
		for y := 0; y < buf.Height; y++ {
			var acc float64
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * tmp.At(x, reflect(y+k, buf.Height))
			}
			out.Set(x, y, acc)
		}
	}
	return out
}

// gaussianKernel builds a normalized 1D kernel of radius int(4σ+0.5).
func gaussianKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := -radius; i <= radius; i++ {
		w := math.Exp(-0.5 * float64(i*i) / (sigma * sigma))
		kernel[i+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// reflect maps an out-of-range index into [0, n) by mirroring at the
// edges without repeating the edge sample's neighbor pattern:
// (d c b a | a b c d | d c b a).
func reflect(i, n int) int {
	if i >= 0 && i < n {
		return i
	}
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}
