package correction

import (
	"math"

	"afm-analyzer/pkg/heightmap"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PlaneFit holds the coefficients of z = a*x + b*y + c, where x is the
// column index (fast scan axis) and y the row index (slow scan axis).
type PlaneFit struct {
	A, B, C float64
}

// At evaluates the fitted plane at column x, row y.
func (p PlaneFit) At(x, y float64) float64 {
	return p.A*x + p.B*y + p.C
}

// FitPlane computes the least-squares plane through all samples of m by
// solving the 3x3 normal equations.
func FitPlane(m *heightmap.Matrix) (PlaneFit, error) {
	rows, cols := m.Rows(), m.Cols()
	n := rows * cols
	if n < 3 {
		return PlaneFit{}, &heightmap.ShapeError{Op: "plane fit", Rows: rows, Cols: cols,
			Reason: "need at least 3 samples"}
	}

	var sx, sy, sxx, syy, sxy, sz, sxz, syz float64
	for r := 0; r < rows; r++ {
		y := float64(r)
		for c := 0; c < cols; c++ {
			x := float64(c)
			z := m.At(r, c)
			sx += x
			sy += y
			sxx += x * x
			syy += y * y
			sxy += x * y
			sz += z
			sxz += x * z
			syz += y * z
		}
	}

	normal := mat.NewDense(3, 3, []float64{
		sxx, sxy, sx,
		sxy, syy, sy,
		sx, sy, float64(n),
	})
	rhs := mat.NewVecDense(3, []float64{sxz, syz, sz})

	var sol mat.VecDense
	if err := sol.SolveVec(normal, rhs); err != nil {
		return PlaneFit{}, &heightmap.ShapeError{Op: "plane fit", Rows: rows, Cols: cols,
			Reason: "degenerate scan geometry"}
	}

	return PlaneFit{A: sol.AtVec(0), B: sol.AtVec(1), C: sol.AtVec(2)}, nil
}

// LineFit holds the coefficients of z = m*x + q for one scan line, with x
// the sample index within the line.
type LineFit struct {
	M, Q float64
}

// At evaluates the fitted line at sample index x.
func (l LineFit) At(x float64) float64 {
	return l.M*x + l.Q
}

// FitLine computes the least-squares line through one scan line's samples.
func FitLine(samples []float64) (LineFit, error) {
	if len(samples) < 2 {
		return LineFit{}, &heightmap.ShapeError{Op: "line fit", Rows: 1, Cols: len(samples),
			Reason: "need at least 2 samples per scan line"}
	}
	xs := sampleIndices(len(samples))
	q, m := stat.LinearRegression(xs, samples, nil, false)
	return LineFit{M: m, Q: q}, nil
}

func sampleIndices(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// meanPopStd returns the arithmetic mean and the population standard
// deviation of xs.
func meanPopStd(xs []float64) (mean, std float64) {
	mean = stat.Mean(xs, nil)
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(xs)))
}
