// Package forge orchestrates batch heatmap generation and file output.
// It is the single entry point shared by the CLI flags path and the
// interactive wizard.
package forge

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/mrsinham/thermalforge/internal/colormap"
	"github.com/mrsinham/thermalforge/internal/heatmap"
	"github.com/mrsinham/thermalforge/internal/sink"
)

// Output formats.
const (
	FormatPNG   = "png"
	FormatDICOM = "dicom"
)

// Options configures a batch run.
type Options struct {
	Heatmap heatmap.Options

	// Seed keys the run. 0 means derive a seed from the output
	// directory name, so regenerating into the same directory
	// reproduces the same files.
	Seed uint64

	// Count is the number of frames to generate (default 1). Frame i
	// uses seed Seed+i so frames differ but the batch stays
	// reproducible.
	Count int

	OutputDir string
	Format    string
	Colormap  string

	// Annotate burns a "Frame n/total" label into each frame.
	Annotate bool
}

// GeneratedFile records one written output file.
type GeneratedFile struct {
	Path string
	Seed uint64
}

// ProgressFunc is called after each frame is written.
type ProgressFunc func(current, total int, path string)

// Run generates opts.Count heatmaps and writes them under
// opts.OutputDir. A nil progress callback is allowed.
func Run(opts Options, progress ProgressFunc) ([]GeneratedFile, error) {
	if opts.Count <= 0 {
		opts.Count = 1
	}
	if opts.Format == "" {
		opts.Format = FormatPNG
	}
	if opts.Format != FormatPNG && opts.Format != FormatDICOM {
		return nil, fmt.Errorf("forge: unknown output format %q", opts.Format)
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "heatmaps"
	}
	if opts.Colormap == "" {
		opts.Colormap = "hot"
	}
	ramp, err := colormap.Lookup(opts.Colormap)
	if err != nil {
		return nil, err
	}
	if opts.Seed == 0 {
		opts.Seed = SeedFromName(opts.OutputDir)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	files := make([]GeneratedFile, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		frameSeed := opts.Seed + uint64(i)
		img, err := heatmap.Generate(heatmap.NewRand(frameSeed), opts.Heatmap)
		if err != nil {
			return nil, fmt.Errorf("generate frame %d: %w", i+1, err)
		}
		if opts.Annotate {
			if err := sink.AnnotateFrame(img, i+1, opts.Count); err != nil {
				return nil, fmt.Errorf("annotate frame %d: %w", i+1, err)
			}
		}

		var path string
		switch opts.Format {
		case FormatPNG:
			path = filepath.Join(opts.OutputDir, fmt.Sprintf("heatmap_%04d.png", i+1))
			err = sink.WritePNG(path, img, ramp)
		case FormatDICOM:
			path = filepath.Join(opts.OutputDir, fmt.Sprintf("heatmap_%04d.dcm", i+1))
			err = sink.WriteDICOM(path, img, sink.DICOMOptions{
				Seed:           opts.Seed,
				InstanceNumber: i + 1,
				TotalInstances: opts.Count,
			})
		}
		if err != nil {
			return nil, fmt.Errorf("write frame %d: %w", i+1, err)
		}

		files = append(files, GeneratedFile{Path: path, Seed: frameSeed})
		if progress != nil {
			progress(i+1, opts.Count, path)
		}
	}
	return files, nil
}

// SeedFromName derives a deterministic seed from a name, so the same
// output directory regenerates the same imagery.
func SeedFromName(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name)) // hash.Write never returns an error
	return h.Sum64()
}
