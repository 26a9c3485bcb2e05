// Package afmfile reads AFM raster exports into height matrices. The
// instrument writes one grayscale TIFF per scan; pixel values are raw
// instrument units and are converted to physical units later, by the
// analysis pipeline.
package afmfile

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"afm-analyzer/pkg/heightmap"

	"golang.org/x/image/tiff"
)

// Read decodes a TIFF height map. Only .tif/.tiff files are accepted
// (extension check is not case-sensitive).
func Read(path string) (*heightmap.Matrix, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".tif" && ext != ".tiff" {
		return nil, fmt.Errorf("input file %s is not a tiff file (want .tif or .tiff extension)", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open height map: %w", err)
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	return fromImage(img)
}

// Load reads a TIFF height map and validates it against the scan geometry.
func Load(path string, geom heightmap.Geometry) (*heightmap.Matrix, error) {
	m, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := geom.Validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// fromImage converts a decoded image to a height matrix, preserving the raw
// sample values for the gray formats the instrument produces.
func fromImage(img image.Image) (*heightmap.Matrix, error) {
	var sample func(x, y int) float64
	switch im := img.(type) {
	case *image.Gray:
		sample = func(x, y int) float64 { return float64(im.GrayAt(x, y).Y) }
	case *image.Gray16:
		sample = func(x, y int) float64 { return float64(im.Gray16At(x, y).Y) }
	default:
		// Color scans should not happen; fall back to the red channel at
		// 16-bit depth, which matches gray for any grayscale-in-color
		// container.
		sample = func(x, y int) float64 {
			r, _, _, _ := img.At(x, y).RGBA()
			return float64(r)
		}
	}

	bounds := img.Bounds()
	rows := make([][]float64, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]float64, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			row[x-bounds.Min.X] = sample(x, y)
		}
		rows[y-bounds.Min.Y] = row
	}

	return heightmap.FromRows(rows)
}
