package wizard

import (
	"fmt"

	"github.com/mrsinham/thermalforge/internal/forge"
	"github.com/mrsinham/thermalforge/internal/heatmap"
)

// ToForgeOptions converts the wizard state to batch-run options.
func ToForgeOptions(s *State) (forge.Options, error) {
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return forge.Options{}, fmt.Errorf("invalid canvas dimensions %dx%d", s.Canvas.Width, s.Canvas.Height)
	}
	if s.Output.Count <= 0 {
		return forge.Options{}, fmt.Errorf("invalid frame count %d", s.Output.Count)
	}
	return forge.Options{
		Heatmap: heatmap.Options{
			Width:       s.Canvas.Width,
			Height:      s.Canvas.Height,
			NumSources:  s.Content.NumSources,
			NumEdges:    s.Content.NumEdges,
			SourceSigma: s.Content.SourceSigma,
			EdgeSigma:   s.Content.EdgeSigma,
			Edginess:    s.Content.Edginess,
		},
		Seed:      s.Output.Seed,
		Count:     s.Output.Count,
		OutputDir: s.Output.OutputDir,
		Format:    s.Output.Format,
		Colormap:  s.Output.Colormap,
		Annotate:  s.Output.Annotate,
	}, nil
}
