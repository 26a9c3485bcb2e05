// Package render turns corrected height maps and analysis results into the
// output images: a 2D false-color map, a 3D surface plot, and the
// height-distribution histogram.
package render

import (
	"fmt"

	"afm-analyzer/pkg/heightmap"

	"gocv.io/x/gocv"
)

// colormaps supported by the 2D map export. "gray" and "greys" bypass the
// OpenCV colormap and write the normalized image directly.
var colormaps = map[string]gocv.ColormapTypes{
	"bone":    gocv.ColormapBone,
	"hot":     gocv.ColormapHot,
	"jet":     gocv.ColormapJet,
	"rainbow": gocv.ColormapRainbow,
	"ocean":   gocv.ColormapOcean,
	"pink":    gocv.ColormapPink,
}

// ValidColorMap reports whether name is usable for both the 2D export and
// the pure-Go plots.
func ValidColorMap(name string) bool {
	if name == "gray" || name == "greys" {
		return true
	}
	_, ok := colormaps[name]
	return ok
}

// SaveHeightMap2D writes the corrected surface as a false-color PNG. Heights
// are normalized over the full matrix range before the colormap is applied.
func SaveHeightMap2D(m *heightmap.Matrix, colorMap, path string) error {
	gray, err := toGrayMat(m)
	if err != nil {
		return err
	}
	defer gray.Close()

	if colorMap == "gray" || colorMap == "greys" {
		if ok := gocv.IMWrite(path, gray); !ok {
			return fmt.Errorf("failed to write 2D image %s", path)
		}
		return nil
	}

	cm, ok := colormaps[colorMap]
	if !ok {
		return fmt.Errorf("unknown color map %q (use gray, greys, bone, hot, jet, rainbow, ocean or pink)", colorMap)
	}

	colored := gocv.NewMat()
	defer colored.Close()
	gocv.ApplyColorMap(gray, &colored, cm)

	if ok := gocv.IMWrite(path, colored); !ok {
		return fmt.Errorf("failed to write 2D image %s", path)
	}
	return nil
}

// toGrayMat normalizes m into an 8-bit single-channel Mat.
func toGrayMat(m *heightmap.Matrix) (gocv.Mat, error) {
	min, max := m.Min(), m.Max()
	span := max - min
	if span == 0 {
		span = 1 // flat surface renders as a single mid-level
	}

	mat := gocv.NewMatWithSize(m.Rows(), m.Cols(), gocv.MatTypeCV8U)
	if mat.Empty() {
		return mat, fmt.Errorf("failed to allocate %dx%d image", m.Rows(), m.Cols())
	}
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			v := (m.At(r, c) - min) / span
			mat.SetUCharAt(r, c, uint8(v*255))
		}
	}
	return mat, nil
}
