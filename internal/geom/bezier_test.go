package geom

import (
	"math"
	"testing"
)

func TestCubicBez_EndpointInterpolation(t *testing.T) {
	bez := CubicBez{
		P0: Pt(1, 2),
		P1: Pt(3, -4),
		P2: Pt(-5, 6),
		P3: Pt(7, 8),
	}

	// The Bernstein weights at the boundary select a single control
	// point, so the endpoints are exact, not approximate.
	if got := bez.Eval(0); got != bez.P0 {
		t.Errorf("Eval(0) = %v, want %v", got, bez.P0)
	}
	if got := bez.Eval(1); got != bez.P3 {
		t.Errorf("Eval(1) = %v, want %v", got, bez.P3)
	}
}

func TestCubicBez_Midpoint(t *testing.T) {
	// A degenerate cubic with all control points on a line evaluates
	// on that line.
	bez := CubicBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 2), P3: Pt(3, 3)}
	got := bez.Eval(0.5)
	if math.Abs(got.X-got.Y) > 1e-12 {
		t.Errorf("Midpoint %v not on the diagonal", got)
	}
}

func TestCubicBez_Sample(t *testing.T) {
	bez := CubicBez{P0: Pt(0, 0), P1: Pt(0, 1), P2: Pt(1, 1), P3: Pt(1, 0)}

	samples := bez.Sample(100)
	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0] != bez.P0 {
		t.Errorf("First sample %v, want %v", samples[0], bez.P0)
	}
	if samples[99] != bez.P3 {
		t.Errorf("Last sample %v, want %v", samples[99], bez.P3)
	}

	if got := bez.Sample(0); got != nil {
		t.Errorf("Sample(0) = %v, want nil", got)
	}
	if got := bez.Sample(1); len(got) != 1 || got[0] != bez.P0 {
		t.Errorf("Sample(1) = %v, want [%v]", got, bez.P0)
	}
}

func TestNewSegment_ControlPoints(t *testing.T) {
	p1 := Pt(0, 0)
	p2 := Pt(10, 0)
	angle1 := math.Pi / 2 // leave p1 straight up
	angle2 := math.Pi / 2 // arrive at p2 heading straight up

	seg := NewSegment(p1, p2, angle1, angle2, SegmentConfig{RadiusFactor: 0.3, SampleCount: 10})

	if seg.Bez.P0 != p1 || seg.Bez.P3 != p2 {
		t.Fatalf("Endpoints not preserved: %v, %v", seg.Bez.P0, seg.Bez.P3)
	}

	// r = 0.3 * 10 = 3. Control 1 is offset along angle1, control 2
	// along the reverse of angle2.
	r := 3.0
	if math.Abs(seg.Bez.P1.X-0) > 1e-9 || math.Abs(seg.Bez.P1.Y-r) > 1e-9 {
		t.Errorf("Control 1 = %v, want (0, %v)", seg.Bez.P1, r)
	}
	if math.Abs(seg.Bez.P2.X-10) > 1e-9 || math.Abs(seg.Bez.P2.Y+r) > 1e-9 {
		t.Errorf("Control 2 = %v, want (10, %v)", seg.Bez.P2, -r)
	}
}

func TestNewSegment_Defaults(t *testing.T) {
	seg := NewSegment(Pt(0, 0), Pt(1, 0), 0, 0, SegmentConfig{})
	if len(seg.Curve) != 100 {
		t.Errorf("Expected default 100 samples, got %d", len(seg.Curve))
	}
}

func TestNewSegment_CoincidentEndpoints(t *testing.T) {
	p := Pt(5, 5)
	seg := NewSegment(p, p, 0, math.Pi, SegmentConfig{SampleCount: 20})
	for i, s := range seg.Curve {
		if s.Distance(p) > 1e-9 {
			t.Errorf("Sample %d of zero-length segment is %v, want %v", i, s, p)
		}
	}
}
