package colormap

import (
	"image/color"
	"testing"

	"github.com/mrsinham/thermalforge/internal/heatmap"
)

func TestLookup_KnownRamps(t *testing.T) {
	for _, name := range Names() {
		ramp, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
		}
		if ramp.Name != name {
			t.Errorf("Lookup(%q) returned ramp %q", name, ramp.Name)
		}
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	ramp, err := Lookup("HOT")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if ramp.Name != "hot" {
		t.Errorf("Got ramp %q, want hot", ramp.Name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("plasma"); err == nil {
		t.Error("Expected error for unknown ramp")
	}
}

func TestRamp_Endpoints(t *testing.T) {
	for _, name := range Names() {
		ramp, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		if got := ramp.Color(0); got != (color.RGBA{0, 0, 0, 255}) {
			t.Errorf("%s: cold end %v, want black", name, got)
		}
		hot := ramp.Color(1)
		if hot.R < 200 {
			t.Errorf("%s: hot end %v is not bright", name, hot)
		}
	}
}

func TestRamp_ClampsParameter(t *testing.T) {
	ramp, err := Lookup("gray")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if got := ramp.Color(-0.5); got != ramp.Color(0) {
		t.Errorf("Underrange parameter gave %v, want %v", got, ramp.Color(0))
	}
	if got := ramp.Color(1.5); got != ramp.Color(1) {
		t.Errorf("Overrange parameter gave %v, want %v", got, ramp.Color(1))
	}
}

func TestRamp_GrayIsLinear(t *testing.T) {
	ramp, err := Lookup("gray")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	mid := ramp.Color(0.5)
	if mid.R != mid.G || mid.G != mid.B {
		t.Errorf("Gray midpoint %v is not neutral", mid)
	}
	if mid.R < 120 || mid.R > 135 {
		t.Errorf("Gray midpoint %v not near half intensity", mid)
	}
}

func TestRamp_Apply(t *testing.T) {
	ramp, err := Lookup("gray")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	src := &heatmap.Image{Width: 2, Height: 1, Pix: []uint8{0, 255}}
	dst := ramp.Apply(src)

	if dst.Bounds().Dx() != 2 || dst.Bounds().Dy() != 1 {
		t.Fatalf("Applied image is %v, want 2x1", dst.Bounds())
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Cold pixel %v, want black", got)
	}
	if got := dst.RGBAAt(1, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Hot pixel %v, want white", got)
	}
}
