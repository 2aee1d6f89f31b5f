package forge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrsinham/thermalforge/internal/heatmap"
)

func smallOptions(dir string) Options {
	return Options{
		Heatmap:   heatmap.Options{Width: 64, Height: 64, NumSources: 1, NumEdges: 1, SourceSigma: 5},
		Seed:      42,
		Count:     3,
		OutputDir: dir,
		Format:    FormatPNG,
	}
}

func TestRun_WritesRequestedFiles(t *testing.T) {
	dir := t.TempDir()
	var calls int
	files, err := Run(smallOptions(dir), func(current, total int, path string) {
		calls++
		if total != 3 {
			t.Errorf("Progress total %d, want 3", total)
		}
		if current != calls {
			t.Errorf("Progress out of order: %d, want %d", current, calls)
		}
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(files) != 3 || calls != 3 {
		t.Fatalf("Got %d files and %d progress calls, want 3 each", len(files), calls)
	}
	for _, f := range files {
		info, err := os.Stat(f.Path)
		if err != nil {
			t.Errorf("Missing output %s: %v", f.Path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("Empty output %s", f.Path)
		}
	}
}

func TestRun_Reproducible(t *testing.T) {
	dir1, dir2 := t.TempDir(), t.TempDir()
	files1, err := Run(smallOptions(dir1), nil)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	files2, err := Run(smallOptions(dir2), nil)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	for i := range files1 {
		data1, err := os.ReadFile(files1[i].Path)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		data2, err := os.ReadFile(files2[i].Path)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if !bytes.Equal(data1, data2) {
			t.Errorf("Frame %d differs between identically seeded runs", i+1)
		}
	}
}

func TestRun_FramesDiffer(t *testing.T) {
	files, err := Run(smallOptions(t.TempDir()), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	data1, err := os.ReadFile(files[0].Path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	data2, err := os.ReadFile(files[1].Path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if bytes.Equal(data1, data2) {
		t.Error("Consecutive frames are identical; per-frame seeds are not advancing")
	}
}

func TestRun_DICOMFormat(t *testing.T) {
	dir := t.TempDir()
	opts := smallOptions(dir)
	opts.Count = 1
	opts.Format = FormatDICOM

	files, err := Run(opts, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if filepath.Ext(files[0].Path) != ".dcm" {
		t.Errorf("DICOM output has extension %s", filepath.Ext(files[0].Path))
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	opts := smallOptions(t.TempDir())
	opts.Format = "bmp"
	if _, err := Run(opts, nil); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestRun_UnknownColormap(t *testing.T) {
	opts := smallOptions(t.TempDir())
	opts.Colormap = "viridis"
	if _, err := Run(opts, nil); err == nil {
		t.Error("Expected error for unknown colormap")
	}
}

func TestRun_InvalidHeatmapOptions(t *testing.T) {
	opts := smallOptions(t.TempDir())
	opts.Heatmap.Width = -1
	if _, err := Run(opts, nil); err == nil {
		t.Error("Expected error for invalid dimensions")
	}
}

func TestSeedFromName(t *testing.T) {
	if SeedFromName("heatmaps") != SeedFromName("heatmaps") {
		t.Error("Seed derivation is not deterministic")
	}
	if SeedFromName("a") == SeedFromName("b") {
		t.Error("Different names produced the same seed")
	}
}
