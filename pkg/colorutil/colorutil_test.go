package colorutil

import (
	"image/color"
	"testing"
)

func TestGrayscaleEndpoints(t *testing.T) {
	if got := Grayscale(0); got != Black {
		t.Errorf("Grayscale(0) = %v, want black", got)
	}
	if got := Grayscale(1); got != White {
		t.Errorf("Grayscale(1) = %v, want white", got)
	}
	// Out-of-range inputs clamp instead of wrapping.
	if got := Grayscale(2); got != White {
		t.Errorf("Grayscale(2) = %v, want white", got)
	}
	if got := Grayscale(-1); got != Black {
		t.Errorf("Grayscale(-1) = %v, want black", got)
	}
}

func TestHotEndpoints(t *testing.T) {
	if got := Hot(0); got != Black {
		t.Errorf("Hot(0) = %v, want black", got)
	}
	if got := Hot(1); got != White {
		t.Errorf("Hot(1) = %v, want white", got)
	}
	mid := Hot(0.34)
	if mid.R != 255 || mid.B != 0 {
		t.Errorf("Hot(0.34) = %v, want saturated red with no blue", mid)
	}
}

func TestJetEndpoints(t *testing.T) {
	low := Jet(0)
	if low.B == 0 || low.R != 0 {
		t.Errorf("Jet(0) = %v, want blue-dominated", low)
	}
	high := Jet(1)
	if high.R == 0 || high.B != 0 {
		t.Errorf("Jet(1) = %v, want red-dominated", high)
	}
}

func TestRampByName(t *testing.T) {
	cases := map[string]color.RGBA{
		"gray": Grayscale(1),
		"hot":  Hot(1),
		"jet":  Jet(1),
	}
	for name, want := range cases {
		ramp, ok := RampByName(name)
		if !ok {
			t.Fatalf("RampByName(%q) not found", name)
		}
		if got := ramp(1); got != want {
			t.Errorf("RampByName(%q)(1) = %v, want %v", name, got, want)
		}
	}

	if _, ok := RampByName("viridis"); ok {
		t.Error("RampByName accepted an unsupported name")
	}
}
