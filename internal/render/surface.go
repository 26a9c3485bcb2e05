package render

import (
	"fmt"
	"image"
	"image/draw"

	"afm-analyzer/pkg/colorutil"
	"afm-analyzer/pkg/heightmap"
)

// SaveSurface3D writes an isometric wireframe plot of the corrected surface,
// with line color following the height ramp and the X/Y axes labeled with the
// physical scan extent. Dense scans are downsampled to keep the mesh readable.
func SaveSurface3D(m *heightmap.Matrix, geom heightmap.Geometry, colorMap, path string) error {
	ramp, ok := colorutil.RampByName(colorMap)
	if !ok {
		return fmt.Errorf("unknown color map %q (use gray, greys, bone, hot, jet, rainbow, ocean or pink)", colorMap)
	}

	img := image.NewRGBA(image.Rect(0, 0, plotWidth, plotHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorutil.White), image.Point{}, draw.Src)

	min, max := m.Min(), m.Max()
	span := max - min
	if span == 0 {
		span = 1
	}

	rows, cols := m.Rows(), m.Cols()
	rowStep := maxInt(1, rows/120)
	colStep := maxInt(1, cols/120)

	project := func(r, c int) (int, int) {
		u, v := 0.0, 0.0
		if cols > 1 {
			u = float64(c) / float64(cols-1)
		}
		if rows > 1 {
			v = float64(r) / float64(rows-1)
		}
		z := (m.At(r, c) - min) / span

		availW := float64(plotWidth - 2*marginRight - marginLeft)
		availH := float64(plotHeight - marginTop - marginBot)
		heightBand := 0.35 * availH
		depthBand := 0.6 * availH

		px := float64(marginLeft) + (u-v+1)/2*availW
		py := float64(marginTop) + heightBand + (u+v)/2*depthBand - z*heightBand
		return int(px), int(py)
	}

	shade := func(r, c int) {
		t := (m.At(r, c) - min) / span
		x1, y1 := project(r, c)
		if c+colStep < cols {
			x2, y2 := project(r, c+colStep)
			drawLine(img, x1, y1, x2, y2, ramp(t))
		}
		if r+rowStep < rows {
			x2, y2 := project(r+rowStep, c)
			drawLine(img, x1, y1, x2, y2, ramp(t))
		}
	}

	// Paint far scan lines first so near lines draw over them.
	for r := 0; r < rows; r += rowStep {
		for c := 0; c < cols; c += colStep {
			shade(r, c)
		}
	}

	xs := geom.Coordinates(cols)
	ys := geom.Coordinates(rows)
	drawLabel(img, plotWidth/2-70, 20, "Corrected Surface (3D)")
	drawLabel(img, plotWidth-220, plotHeight-15, fmt.Sprintf("X: 0 to %.3g um", xs[len(xs)-1]))
	drawLabel(img, 15, plotHeight-15, fmt.Sprintf("Y: 0 to %.3g um", ys[len(ys)-1]))
	drawLabel(img, 15, marginTop, "Z (nm)")

	return savePNG(img, path)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
