package correction

import (
	"afm-analyzer/pkg/heightmap"
)

// DriftStats aggregates the per-row drift fits across all scan lines.
// For the linear variant MeanM/StdM/MeanQ/StdQ are set; for the mean variant
// MeanOffset/StdOffset are set. The statistics describe the fits of the
// original rows, before subtraction.
type DriftStats struct {
	Mode DriftMode

	MeanM, StdM float64
	MeanQ, StdQ float64

	MeanOffset, StdOffset float64
}

// ShiftStats records the scalar offset applied by the data shift stage.
type ShiftStats struct {
	Mode   ShiftMode
	Offset float64
}

// Report collects the coefficients and statistics produced by the correction
// stages. A nil field means the stage was skipped.
type Report struct {
	Plane *PlaneFit
	Drift *DriftStats
	Shift *ShiftStats
}

// subtractPlane removes the least-squares plane from m in place and records
// its coefficients.
func subtractPlane(m *heightmap.Matrix, rep *Report) error {
	fit, err := FitPlane(m)
	if err != nil {
		return err
	}
	for r := 0; r < m.Rows(); r++ {
		row := m.Row(r)
		y := float64(r)
		for c := range row {
			row[c] -= fit.At(float64(c), y)
		}
	}
	rep.Plane = &fit
	return nil
}

// subtractLinearDrift fits and removes z = m*x + q from each scan line
// independently, then records the mean and spread of the fitted slopes and
// intercepts.
func subtractLinearDrift(m *heightmap.Matrix, rep *Report) error {
	ms := make([]float64, m.Rows())
	qs := make([]float64, m.Rows())
	for r := 0; r < m.Rows(); r++ {
		row := m.Row(r)
		fit, err := FitLine(row)
		if err != nil {
			return err
		}
		for c := range row {
			row[c] -= fit.At(float64(c))
		}
		ms[r] = fit.M
		qs[r] = fit.Q
	}

	stats := &DriftStats{Mode: DriftLinear}
	stats.MeanM, stats.StdM = meanPopStd(ms)
	stats.MeanQ, stats.StdQ = meanPopStd(qs)
	rep.Drift = stats
	return nil
}

// subtractMeanDrift removes each scan line's arithmetic mean from that line.
// The recorded statistics are computed from the pre-subtraction row means,
// so they diagnose the drift magnitude that was removed.
func subtractMeanDrift(m *heightmap.Matrix, rep *Report) error {
	means := make([]float64, m.Rows())
	for r := 0; r < m.Rows(); r++ {
		row := m.Row(r)
		var sum float64
		for _, v := range row {
			sum += v
		}
		mean := sum / float64(len(row))
		for c := range row {
			row[c] -= mean
		}
		means[r] = mean
	}

	stats := &DriftStats{Mode: DriftMean}
	stats.MeanOffset, stats.StdOffset = meanPopStd(means)
	rep.Drift = stats
	return nil
}

// shiftMinimum subtracts the global minimum so the lowest sample sits at
// exactly zero.
func shiftMinimum(m *heightmap.Matrix, rep *Report) error {
	offset := -m.Min()
	m.AddScalar(offset)
	rep.Shift = &ShiftStats{Mode: ShiftMinimum, Offset: offset}
	return nil
}

// shiftMean subtracts the global mean so the surface is centered on zero.
func shiftMean(m *heightmap.Matrix, rep *Report) error {
	offset := -m.Mean()
	m.AddScalar(offset)
	rep.Shift = &ShiftStats{Mode: ShiftMean, Offset: offset}
	return nil
}
