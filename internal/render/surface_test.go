package render

import (
	"os"
	"path/filepath"
	"testing"

	"afm-analyzer/pkg/heightmap"
)

func TestSaveSurface3D(t *testing.T) {
	m, err := heightmap.FromRows([][]float64{
		{0, 1, 2},
		{1, 2, 3},
		{2, 3, 4},
	})
	if err != nil {
		t.Fatalf("building matrix: %v", err)
	}
	geom := heightmap.Geometry{ScanningRate: 3, ImageLength: 5, HeightScale: 1}

	path := filepath.Join(t.TempDir(), "surface.png")
	if err := SaveSurface3D(m, geom, "jet", path); err != nil {
		t.Fatalf("SaveSurface3D failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("plot was not written: %v", err)
	}
}

func TestSaveSurface3DFlatSurface(t *testing.T) {
	m, err := heightmap.FromRows([][]float64{{1, 1}, {1, 1}})
	if err != nil {
		t.Fatalf("building matrix: %v", err)
	}
	geom := heightmap.Geometry{ScanningRate: 2, ImageLength: 1, HeightScale: 1}

	path := filepath.Join(t.TempDir(), "flat.png")
	if err := SaveSurface3D(m, geom, "gray", path); err != nil {
		t.Fatalf("SaveSurface3D failed on flat surface: %v", err)
	}
}

func TestSaveSurface3DSingleColumn(t *testing.T) {
	// A one-column scan has no X extent; the axis labels must still come out.
	m, err := heightmap.FromRows([][]float64{{1}, {2}, {3}})
	if err != nil {
		t.Fatalf("building matrix: %v", err)
	}
	geom := heightmap.Geometry{ScanningRate: 1, ImageLength: 2, HeightScale: 1}

	path := filepath.Join(t.TempDir(), "column.png")
	if err := SaveSurface3D(m, geom, "hot", path); err != nil {
		t.Fatalf("SaveSurface3D failed on single-column scan: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("plot was not written: %v", err)
	}
}

func TestSaveSurface3DUnknownColorMap(t *testing.T) {
	m, _ := heightmap.FromRows([][]float64{{1, 2}, {3, 4}})
	geom := heightmap.Geometry{ScanningRate: 2, ImageLength: 1, HeightScale: 1}
	err := SaveSurface3D(m, geom, "viridis", filepath.Join(t.TempDir(), "x.png"))
	if err == nil {
		t.Fatal("SaveSurface3D accepted an unknown color map")
	}
}
