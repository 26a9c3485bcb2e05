package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestHistogramCountsEverySample(t *testing.T) {
	values := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}
	centers, counts := Histogram(values)

	if len(centers) != histogramBins || len(counts) != histogramBins {
		t.Fatalf("got %d centers, %d counts, want %d each", len(centers), len(counts), histogramBins)
	}
	if got := floats.Sum(counts); got != float64(len(values)) {
		t.Errorf("total count = %g, want %d", got, len(values))
	}
	// The maximum sample lands in the last (closed) bin.
	if counts[histogramBins-1] != 1 {
		t.Errorf("last bin count = %g, want 1", counts[histogramBins-1])
	}
}

func TestHistogramCenters(t *testing.T) {
	values := []float64{0, 100}
	centers, _ := Histogram(values)

	if centers[0] != 0.5 {
		t.Errorf("first center = %g, want 0.5", centers[0])
	}
	if centers[len(centers)-1] != 99.5 {
		t.Errorf("last center = %g, want 99.5", centers[len(centers)-1])
	}
}

func TestHistogramFlatValues(t *testing.T) {
	centers, counts := Histogram([]float64{4, 4, 4})
	if got := floats.Sum(counts); got != 3 {
		t.Errorf("total count = %g, want 3", got)
	}
	if centers[0] >= centers[len(centers)-1] {
		t.Error("flat input produced non-increasing centers")
	}
}

func TestSaveHistogramWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist.png")
	if err := SaveHistogram([]float64{1, 2, 2, 3, 3, 3}, path); err != nil {
		t.Fatalf("SaveHistogram failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening plot: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("plot is not a PNG: %v", err)
	}
	if cfg.Width != plotWidth || cfg.Height != plotHeight {
		t.Errorf("plot size = %dx%d, want %dx%d", cfg.Width, cfg.Height, plotWidth, plotHeight)
	}
}

func TestValidColorMap(t *testing.T) {
	for _, name := range []string{"gray", "greys", "jet", "hot", "bone", "rainbow", "ocean", "pink"} {
		if !ValidColorMap(name) {
			t.Errorf("ValidColorMap(%q) = false", name)
		}
	}
	if ValidColorMap("viridis") {
		t.Error("ValidColorMap accepted an unsupported name")
	}
}
