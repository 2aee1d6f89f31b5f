package sink

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mrsinham/thermalforge/internal/heatmap"
)

// AnnotateFrame burns a "Frame n/total" label into the heatmap pixels,
// centered horizontally near the top. The label is drawn white with a
// black outline so it stays readable on any background. Modifies img
// in place.
func AnnotateFrame(img *heatmap.Image, frameNum, totalFrames int) error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", img.Width, img.Height)
	}
	if len(img.Pix) != img.Width*img.Height {
		return fmt.Errorf("pixel slice length %d does not match dimensions %dx%d", len(img.Pix), img.Width, img.Height)
	}
	if frameNum < 1 || totalFrames < 1 || frameNum > totalFrames {
		return fmt.Errorf("invalid frame numbering: %d/%d", frameNum, totalFrames)
	}

	// Draw on an RGBA staging image; text rendering wants a draw.Image.
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			gray := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{gray, gray, gray, 255})
		}
	}

	text := fmt.Sprintf("Frame %d/%d", frameNum, totalFrames)
	face := basicfont.Face7x13

	paddingTop := int(float64(img.Height) * 0.05)
	textWidth := font.MeasureString(face, text).Ceil()
	x := (img.Width - textWidth) / 2
	y := paddingTop + face.Metrics().Ascent.Ceil()

	drawer := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, y),
	}

	// Black outline first, then the white label on top.
	const outlineThickness = 2
	for dx := -outlineThickness; dx <= outlineThickness; dx++ {
		for dy := -outlineThickness; dy <= outlineThickness; dy++ {
			if dx != 0 || dy != 0 {
				drawer.Dot = fixed.P(x+dx, y+dy)
				drawer.DrawString(text)
			}
		}
	}
	drawer.Src = image.NewUniform(color.White)
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(text)

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, _ := rgba.At(x, y).RGBA()
			// RGBA() returns 16-bit channels; average down to 8 bits.
			img.Pix[y*img.Width+x] = uint8((r + g + b) / (3 * 256))
		}
	}
	return nil
}
