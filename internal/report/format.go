package report

import (
	"fmt"

	"afm-analyzer/internal/analysis"
	"afm-analyzer/internal/correction"
)

const separator = "----------------------------"

// WriteResults writes the correction and analysis sections and closes the
// sink. The sink is closed even when a write fails, so file-backed sinks do
// not leak their handle on a short write.
func WriteResults(s Sink, corr correction.Report, an analysis.Report) error {
	werr := WriteCorrection(s, corr)
	if werr == nil {
		werr = WriteAnalysis(s, an)
	}
	cerr := s.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// WriteCorrection writes one section per executed correction stage, in
// pipeline order. Skipped stages produce no output.
func WriteCorrection(s Sink, rep correction.Report) error {
	if rep.Plane != nil {
		err := s.WriteSection(
			"COMMON PLANE SUBTRACTION",
			"plane equation: z = a*x + b*y + c",
			fmt.Sprintf("a = %g", rep.Plane.A),
			fmt.Sprintf("b = %g", rep.Plane.B),
			fmt.Sprintf("c = %g", rep.Plane.C),
			separator,
		)
		if err != nil {
			return err
		}
	}

	if rep.Drift != nil {
		var err error
		switch rep.Drift.Mode {
		case correction.DriftLinear:
			err = s.WriteSection(
				"LINE DRIFT SUBTRACTION",
				"line equation: z = m*x + q",
				fmt.Sprintf("average m value = %g", rep.Drift.MeanM),
				fmt.Sprintf("m values standard deviation = %g", rep.Drift.StdM),
				fmt.Sprintf("average q value = %g", rep.Drift.MeanQ),
				fmt.Sprintf("q values standard deviation = %g", rep.Drift.StdQ),
				separator,
			)
		case correction.DriftMean:
			err = s.WriteSection(
				"MEAN DRIFT SUBTRACTION",
				fmt.Sprintf("average mean value = %g", rep.Drift.MeanOffset),
				fmt.Sprintf("standard deviation = %g", rep.Drift.StdOffset),
				separator,
			)
		}
		if err != nil {
			return err
		}
	}

	if rep.Shift != nil {
		err := s.WriteSection(
			"DATA SHIFT",
			fmt.Sprintf("mode = %s", rep.Shift.Mode),
			fmt.Sprintf("applied offset = %g", rep.Shift.Offset),
			separator,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteAnalysis writes the roughness section, if roughness was computed.
// The height distribution is plot-only output and has no text form.
func WriteAnalysis(s Sink, rep analysis.Report) error {
	if rep.Roughness == nil {
		return nil
	}
	switch rep.Roughness.Mode {
	case analysis.Roughness1D:
		return s.WriteSection(
			"1D ROUGHNESS",
			fmt.Sprintf("roughness = %g nm", rep.Roughness.RoughnessNM),
			fmt.Sprintf("standard deviation = %g nm", rep.Roughness.StdNM),
			separator,
		)
	case analysis.Roughness2D:
		return s.WriteSection(
			"2D ROUGHNESS",
			fmt.Sprintf("roughness = %g nm", rep.Roughness.RoughnessNM),
			separator,
		)
	}
	return nil
}
