package heatmap

// Buffer is a dense row-major grid of float64 intensity samples,
// indexed [row, column] = [y, x]. Contributions stay non-negative
// until their explicit normalization step.
type Buffer struct {
	Width  int
	Height int
	Data   []float64
}

// NewBuffer allocates a zeroed width×height buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}
}

// At returns the sample at (x, y).
func (b *Buffer) At(x, y int) float64 {
	return b.Data[y*b.Width+x]
}

// Set assigns the sample at (x, y).
func (b *Buffer) Set(x, y int, v float64) {
	b.Data[y*b.Width+x] = v
}

// Max returns the largest sample, or 0 for an empty buffer.
func (b *Buffer) Max() float64 {
	var m float64
	for _, v := range b.Data {
		if v > m {
			m = v
		}
	}
	return m
}

// Add accumulates o into b element-wise. The buffers must share
// dimensions; the caller allocates both from the same canvas shape.
func (b *Buffer) Add(o *Buffer) {
	for i, v := range o.Data {
		b.Data[i] += v
	}
}

// Scale multiplies every sample by f.
func (b *Buffer) Scale(f float64) {
	for i := range b.Data {
		b.Data[i] *= f
	}
}

// Normalize divides every sample by the buffer maximum, mapping the
// buffer into [0, 1]. An all-zero buffer is left unchanged; skipping
// the division is the defined behavior, not an error.
func (b *Buffer) Normalize() {
	m := b.Max()
	if m == 0 {
		return
	}
	b.Scale(1 / m)
}

// Quantize clamps every sample to [0, 255] and truncates to 8-bit
// unsigned integers.
func (b *Buffer) Quantize() *Image {
	img := &Image{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]uint8, len(b.Data)),
	}
	for i, v := range b.Data {
		switch {
		case v < 0:
			img.Pix[i] = 0
		case v > 255:
			img.Pix[i] = 255
		default:
			img.Pix[i] = uint8(v)
		}
	}
	return img
}

// Image is a quantized heatmap: 8-bit intensity samples, row-major,
// value 0 coldest and 255 hottest.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the intensity at (x, y).
func (im *Image) At(x, y int) uint8 {
	return im.Pix[y*im.Width+x]
}
