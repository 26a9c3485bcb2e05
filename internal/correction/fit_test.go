package correction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afm-analyzer/pkg/heightmap"
)

func TestFitPlaneOnRowGradient(t *testing.T) {
	// Each row is constant, rows increase by 1: z = y exactly.
	m, err := heightmap.FromRows([][]float64{
		{0, 0, 0},
		{1, 1, 1},
		{2, 2, 2},
	})
	require.NoError(t, err)

	fit, err := FitPlane(m)
	require.NoError(t, err)
	assert.InDelta(t, 0, fit.A, 1e-12)
	assert.InDelta(t, 1, fit.B, 1e-12)
	assert.InDelta(t, 0, fit.C, 1e-12)
}

func TestFitPlaneRecoversCoefficients(t *testing.T) {
	m, _ := heightmap.New(10, 10)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			m.Set(r, c, 2.5*float64(c)+3.2*float64(r)+5)
		}
	}

	fit, err := FitPlane(m)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, fit.A, 1e-9)
	assert.InDelta(t, 3.2, fit.B, 1e-9)
	assert.InDelta(t, 5, fit.C, 1e-9)
}

func TestFitPlaneTooSmall(t *testing.T) {
	m, err := heightmap.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	_, err = FitPlane(m)
	var shapeErr *heightmap.ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestFitPlaneDegenerateGeometry(t *testing.T) {
	// A single scan line has no slow-axis extent, so b is unidentifiable.
	m, err := heightmap.FromRows([][]float64{{1, 2, 3, 4}})
	require.NoError(t, err)

	_, err = FitPlane(m)
	var shapeErr *heightmap.ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestFitLine(t *testing.T) {
	fit, err := FitLine([]float64{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1, fit.M, 1e-12)
	assert.InDelta(t, 0, fit.Q, 1e-12)
}

func TestFitLineShortRow(t *testing.T) {
	_, err := FitLine([]float64{7})
	var shapeErr *heightmap.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("FitLine error = %v, want ShapeError", err)
	}
}

func TestMeanPopStd(t *testing.T) {
	mean, std := meanPopStd([]float64{1, 2})
	assert.InDelta(t, 1.5, mean, 1e-12)
	assert.InDelta(t, 0.5, std, 1e-12)
}
