// Package analysis computes surface statistics from corrected AFM height
// maps: the height-value distribution and the 1D or 2D roughness estimate.
//
// All primitives operate on heights already scaled to nanometers; the
// pipeline applies the geometry's scaling factor once before running them.
package analysis

import (
	"math"

	"afm-analyzer/internal/correction"
	"afm-analyzer/pkg/heightmap"

	"gonum.org/v1/gonum/stat"
)

// HeightValues returns every sample of m scaled to nanometers as a flat
// slice. The order is unspecified beyond being deterministic; the values are
// meant for distribution binning only.
func HeightValues(m *heightmap.Matrix, scale float64) []float64 {
	src := m.Values()
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = v * scale
	}
	return out
}

// RowRoughness computes the 1D roughness of m: for each scan line a fresh
// least-squares line is fitted and the root-mean-square of the residuals is
// that line's local roughness. The returned values are the mean and the
// population standard deviation of the per-line roughness across all lines.
// The spread doubles as the uncertainty on the mean roughness.
func RowRoughness(m *heightmap.Matrix) (rough, std float64, err error) {
	perRow := make([]float64, m.Rows())
	for r := 0; r < m.Rows(); r++ {
		row := m.Row(r)
		fit, err := correction.FitLine(row)
		if err != nil {
			return 0, 0, err
		}
		var ss float64
		for c, v := range row {
			d := v - fit.At(float64(c))
			ss += d * d
		}
		perRow[r] = math.Sqrt(ss / float64(len(row)))
	}
	rough, std = meanPopStd(perRow)
	return rough, std, nil
}

// SurfaceRoughness computes the 2D roughness of m: the root-mean-square of
// the residuals from a single least-squares plane fitted over the whole
// surface. One scalar, no spread, since it already aggregates every sample.
func SurfaceRoughness(m *heightmap.Matrix) (float64, error) {
	fit, err := correction.FitPlane(m)
	if err != nil {
		return 0, err
	}
	var ss float64
	n := 0
	for r := 0; r < m.Rows(); r++ {
		row := m.Row(r)
		y := float64(r)
		for c, v := range row {
			d := v - fit.At(float64(c), y)
			ss += d * d
			n++
		}
	}
	return math.Sqrt(ss / float64(n)), nil
}

func meanPopStd(xs []float64) (mean, std float64) {
	mean = stat.Mean(xs, nil)
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(xs)))
}
