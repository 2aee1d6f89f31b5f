package wizard

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mrsinham/thermalforge/internal/forge"
	"github.com/mrsinham/thermalforge/internal/heatmap"
)

func TestToForgeOptions(t *testing.T) {
	state := &State{
		Canvas: CanvasConfig{Width: 128, Height: 64},
		Content: ContentConfig{
			NumSources:  2,
			NumEdges:    1,
			SourceSigma: 40,
			EdgeSigma:   3,
			Edginess:    0.5,
		},
		Output: OutputConfig{
			OutputDir: "out",
			Format:    "png",
			Colormap:  "hot",
			Count:     2,
			Seed:      11,
			Annotate:  true,
		},
	}

	opts, err := ToForgeOptions(state)
	if err != nil {
		t.Fatalf("ToForgeOptions failed: %v", err)
	}

	want := forge.Options{
		Heatmap: heatmap.Options{
			Width:       128,
			Height:      64,
			NumSources:  2,
			NumEdges:    1,
			SourceSigma: 40,
			EdgeSigma:   3,
			Edginess:    0.5,
		},
		Seed:      11,
		Count:     2,
		OutputDir: "out",
		Format:    "png",
		Colormap:  "hot",
		Annotate:  true,
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("Unexpected options (-want +got):\n%s", diff)
	}
}

func TestToForgeOptions_InvalidCanvas(t *testing.T) {
	state := DefaultState()
	state.Canvas.Width = 0
	if _, err := ToForgeOptions(state); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestToForgeOptions_InvalidCount(t *testing.T) {
	state := DefaultState()
	state.Output.Count = 0
	if _, err := ToForgeOptions(state); err == nil {
		t.Error("Expected error for zero count")
	}
}

func TestDefaultState_Converts(t *testing.T) {
	if _, err := ToForgeOptions(DefaultState()); err != nil {
		t.Errorf("Default state does not convert: %v", err)
	}
}
