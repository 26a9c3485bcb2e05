package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"afm-analyzer/pkg/colorutil"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/floats"
)

// histogramBins matches the binning used for the distribution plot.
const histogramBins = 100

// Histogram bins the height values into 100 equal-width bins spanning
// [min, max] and returns the bin centers with the per-bin counts. The last
// bin is closed so the maximum sample is counted, numpy-histogram style;
// gonum's stat.Histogram keeps a half-open final bin, which would drop it.
func Histogram(values []float64) (centers, counts []float64) {
	min, max := floats.Min(values), floats.Max(values)
	span := max - min
	if span == 0 {
		// All heights identical: a single populated center bin.
		min, max, span = min-0.5, max+0.5, 1
	}

	width := span / histogramBins
	counts = make([]float64, histogramBins)
	for _, v := range values {
		bin := int((v - min) / width)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		counts[bin]++
	}

	centers = make([]float64, histogramBins)
	for i := range centers {
		centers[i] = min + width*(float64(i)+0.5)
	}
	return centers, counts
}

// Plot layout constants shared by the histogram and surface plots.
const (
	plotWidth   = 800
	plotHeight  = 600
	marginLeft  = 70
	marginTop   = 40
	marginBot   = 60
	marginRight = 30
)

// SaveHistogram plots the height-value distribution and writes it as a PNG.
func SaveHistogram(values []float64, path string) error {
	centers, counts := Histogram(values)

	img := image.NewRGBA(image.Rect(0, 0, plotWidth, plotHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorutil.White), image.Point{}, draw.Src)

	plotW := plotWidth - marginLeft - marginRight
	plotH := plotHeight - marginTop - marginBot

	maxCount := floats.Max(counts)
	if maxCount == 0 {
		maxCount = 1
	}

	// Axes.
	drawLine(img, marginLeft, marginTop, marginLeft, marginTop+plotH, colorutil.Black)
	drawLine(img, marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH, colorutil.Black)

	// One bar per bin.
	barW := float64(plotW) / float64(len(counts))
	for i, n := range counts {
		h := int(n / maxCount * float64(plotH))
		if h == 0 {
			continue
		}
		x0 := marginLeft + int(float64(i)*barW)
		x1 := marginLeft + int(float64(i+1)*barW)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		bar := image.Rect(x0, marginTop+plotH-h, x1, marginTop+plotH)
		draw.Draw(img, bar, image.NewUniform(colorutil.Blue), image.Point{}, draw.Src)
	}

	drawLabel(img, plotWidth/2-60, plotHeight-15, "height values (nm)")
	drawLabel(img, 10, marginTop-15, "counts")
	drawLabel(img, plotWidth/2-90, 20, "Height Values Distribution")
	drawLabel(img, marginLeft-10, marginTop+plotH+20, fmt.Sprintf("%.3g", centers[0]))
	drawLabel(img, marginLeft+plotW-40, marginTop+plotH+20, fmt.Sprintf("%.3g", centers[len(centers)-1]))
	drawLabel(img, marginLeft-60, marginTop+10, fmt.Sprintf("%.0f", maxCount))

	return savePNG(img, path)
}

func drawLabel(img draw.Image, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorutil.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// drawLine draws a straight segment with Bresenham stepping.
func drawLine(img draw.Image, x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating plot file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding plot: %w", err)
	}
	return nil
}
