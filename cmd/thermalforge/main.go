package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrsinham/thermalforge/cmd/thermalforge/wizard"
	"github.com/mrsinham/thermalforge/internal/forge"
	"github.com/mrsinham/thermalforge/internal/heatmap"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		var fromConfig string
		for i, arg := range os.Args[2:] {
			if arg == "--from" && i+3 < len(os.Args) {
				fromConfig = os.Args[i+3]
			}
		}
		if err := wizard.Run(fromConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Canvas and content flags
	width := flag.Int("width", 256, "Canvas width in pixels")
	height := flag.Int("height", 256, "Canvas height in pixels")
	numSources := flag.Int("num-sources", 3, "Number of diffuse heat sources")
	numEdges := flag.Int("num-edges", 1, "Number of curved edge artifacts")
	edgeSigma := flag.Float64("edge-sigma", 5, "Gaussian blur sigma applied to the edge map")
	sourceSigma := flag.Float64("source-sigma", 50, "Gaussian blur sigma applied to each heat source")

	// Advanced tunables
	edginess := flag.Float64("edginess", 0, "Corner sharpness of edge curves (0 = smoothest)")
	radius := flag.Float64("radius", 0, "Curve control-point radius factor (0 = default 0.2)")
	numPoints := flag.Int("num-points", 0, "Points per edge curve (0 = default 3)")
	minDistance := flag.Float64("min-distance", 0, "Minimum spacing between sampled curve points (0 = default)")
	samplesPerSegment := flag.Int("samples-per-segment", 0, "Curve samples per segment (0 = default 100)")

	// Output flags
	outputDir := flag.String("output", "heatmaps", "Output directory")
	format := flag.String("format", "png", "Output format: png, dicom")
	colormapName := flag.String("colormap", "hot", "Colormap for PNG output: hot, iron, gray")
	count := flag.Int("count", 1, "Number of frames to generate")
	seed := flag.Uint64("seed", 0, "Seed for reproducibility (0 = derived from output directory)")
	annotate := flag.Bool("annotate", false, "Burn a 'Frame n/total' label into each frame")
	quiet := flag.Bool("quiet", false, "Suppress progress output")

	// Interactive wizard and config options
	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load configuration from YAML file")
	saveConfig := flag.String("save-config", "", "Save configuration to YAML file (after generation)")

	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *showVersion {
		fmt.Printf("thermalforge %s\n", version)
		os.Exit(0)
	}

	if *interactive {
		if err := wizard.Run(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	var opts forge.Options
	if *configFile != "" {
		state, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		opts, err = wizard.ToForgeOptions(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting config: %v\n", err)
			os.Exit(1)
		}
	} else {
		opts = forge.Options{
			Heatmap: heatmap.Options{
				Width:             *width,
				Height:            *height,
				NumSources:        *numSources,
				NumEdges:          *numEdges,
				EdgeSigma:         *edgeSigma,
				SourceSigma:       *sourceSigma,
				Edginess:          *edginess,
				Radius:            *radius,
				NumPoints:         *numPoints,
				MinDistance:       *minDistance,
				SamplesPerSegment: *samplesPerSegment,
			},
			Seed:      *seed,
			Count:     *count,
			OutputDir: *outputDir,
			Format:    *format,
			Colormap:  *colormapName,
			Annotate:  *annotate,
		}
	}

	if !*quiet {
		fmt.Println("thermalforge")
		fmt.Println("============")
		if opts.Seed == 0 {
			fmt.Printf("Auto-generated seed from '%s': %d\n", opts.OutputDir, forge.SeedFromName(opts.OutputDir))
			fmt.Println("  (same directory = same imagery)")
		}
	}

	progress := forge.ProgressFunc(nil)
	if !*quiet {
		progress = func(current, total int, path string) {
			fmt.Printf("  [%d/%d] %s\n", current, total, path)
		}
	}

	files, err := forge.Run(opts, progress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating heatmaps: %v\n", err)
		os.Exit(1)
	}

	if *saveConfig != "" {
		state := &wizard.State{
			Canvas: wizard.CanvasConfig{Width: opts.Heatmap.Width, Height: opts.Heatmap.Height},
			Content: wizard.ContentConfig{
				NumSources:  opts.Heatmap.NumSources,
				NumEdges:    opts.Heatmap.NumEdges,
				SourceSigma: opts.Heatmap.SourceSigma,
				EdgeSigma:   opts.Heatmap.EdgeSigma,
				Edginess:    opts.Heatmap.Edginess,
			},
			Output: wizard.OutputConfig{
				OutputDir: opts.OutputDir,
				Format:    opts.Format,
				Colormap:  opts.Colormap,
				Count:     opts.Count,
				Seed:      opts.Seed,
				Annotate:  opts.Annotate,
			},
		}
		if err := wizard.SaveToYAML(*saveConfig, state); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		if !*quiet {
			fmt.Printf("Saved config to %s\n", *saveConfig)
		}
	}

	if !*quiet {
		fmt.Printf("\nGenerated %d file(s) in %s\n", len(files), opts.OutputDir)
	}
}
