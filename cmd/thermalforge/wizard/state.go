// Package wizard provides an interactive TUI for configuring heatmap
// generation.
package wizard

// State holds the complete state for the wizard interface.
type State struct {
	Canvas  CanvasConfig
	Content ContentConfig
	Output  OutputConfig
}

// CanvasConfig holds the output raster dimensions.
type CanvasConfig struct {
	Width  int
	Height int
}

// ContentConfig holds the generation parameters.
type ContentConfig struct {
	NumSources  int
	NumEdges    int
	SourceSigma float64
	EdgeSigma   float64
	Edginess    float64
}

// OutputConfig holds the file output settings.
type OutputConfig struct {
	OutputDir string
	Format    string
	Colormap  string
	Count     int
	Seed      uint64
	Annotate  bool
}

// DefaultState returns the wizard defaults.
func DefaultState() *State {
	return &State{
		Canvas: CanvasConfig{Width: 256, Height: 256},
		Content: ContentConfig{
			NumSources:  3,
			NumEdges:    1,
			SourceSigma: 50,
			EdgeSigma:   5,
		},
		Output: OutputConfig{
			OutputDir: "heatmaps",
			Format:    "png",
			Colormap:  "hot",
			Count:     1,
		},
	}
}
