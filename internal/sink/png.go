// Package sink persists generated heatmaps as raster files. The core
// pipeline's contract ends at the numeric array; everything here is
// presentation.
package sink

import (
	"fmt"
	"image/png"
	"os"

	"github.com/mrsinham/thermalforge/internal/colormap"
	"github.com/mrsinham/thermalforge/internal/heatmap"
)

// WritePNG colormaps img through ramp and writes it as a PNG file.
func WritePNG(path string, img *heatmap.Image, ramp colormap.Ramp) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, ramp.Apply(img)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
