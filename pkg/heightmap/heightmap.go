// Package heightmap provides the raster height-map type shared by the
// correction and analysis pipelines.
package heightmap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a rectangular grid of surface heights in instrument units.
// The row index is the slow scan axis (line number), the column index the
// fast scan axis (sample within a line). Data is stored row-major.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New creates a zero-filled rows x cols matrix.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ShapeError{Op: "new matrix", Rows: rows, Cols: cols, Reason: "dimensions must be positive"}
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a matrix from row slices. All rows must have the same
// non-zero length and every value must be finite.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &ShapeError{Op: "load matrix", Rows: len(rows), Reason: "matrix is empty"}
	}
	cols := len(rows[0])
	m := &Matrix{rows: len(rows), cols: cols, data: make([]float64, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, &ShapeError{Op: "load matrix", Rows: len(rows), Cols: len(row),
				Reason: fmt.Sprintf("row %d has %d samples, want %d", i, len(row), cols)}
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ShapeError{Op: "load matrix", Rows: len(rows), Cols: cols,
					Reason: fmt.Sprintf("non-finite height at (%d, %d)", i, j)}
			}
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// Rows returns the number of scan lines.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of samples per scan line.
func (m *Matrix) Cols() int { return m.cols }

// At returns the height at row r, column c.
func (m *Matrix) At(r, c int) float64 { return m.data[r*m.cols+c] }

// Set stores a height at row r, column c.
func (m *Matrix) Set(r, c int, v float64) { m.data[r*m.cols+c] = v }

// Row returns scan line r as a slice sharing the matrix storage.
func (m *Matrix) Row(r int) []float64 { return m.data[r*m.cols : (r+1)*m.cols] }

// Values returns the backing slice of all heights in row-major order.
// Mutating it mutates the matrix.
func (m *Matrix) Values() []float64 { return m.data }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Min returns the smallest height in the matrix.
func (m *Matrix) Min() float64 { return floats.Min(m.data) }

// Max returns the largest height in the matrix.
func (m *Matrix) Max() float64 { return floats.Max(m.data) }

// Mean returns the arithmetic mean of all heights.
func (m *Matrix) Mean() float64 { return floats.Sum(m.data) / float64(len(m.data)) }

// AddScalar adds v to every height in place.
func (m *Matrix) AddScalar(v float64) { floats.AddConst(v, m.data) }

// Scale multiplies every height by f in place.
func (m *Matrix) Scale(f float64) { floats.Scale(f, m.data) }

// Scaled returns a copy with every height multiplied by f.
func (m *Matrix) Scaled(f float64) *Matrix {
	out := m.Clone()
	out.Scale(f)
	return out
}
