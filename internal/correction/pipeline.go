// Package correction implements the image correction stages applied to raw
// AFM height maps: common plane subtraction, per-line drift correction, and
// vertical offset normalization.
//
// Stages always run in that order. Each stage is a pure transformation of the
// height matrix plus a contribution to the correction report; the pipeline
// works on a copy, so a failed run leaves the caller's matrix untouched.
package correction

import (
	"fmt"
	"log"

	"afm-analyzer/pkg/heightmap"
)

type stage struct {
	name  string
	apply func(*heightmap.Matrix, *Report) error
}

// Pipeline is an ordered sequence of correction stages assembled from a
// Config.
type Pipeline struct {
	stages []stage
}

// NewPipeline validates cfg and assembles the stage sequence:
// plane subtraction, then drift correction, then data shift, each included
// only when enabled. Drift correction requested without plane subtraction
// pulls plane subtraction in automatically, since a per-line fit on a tilted
// surface would fold the global slope into every line.
func NewPipeline(cfg Config) (*Pipeline, error) {
	p := &Pipeline{}

	switch cfg.Plane {
	case PlaneOn:
		p.add("plane subtraction", subtractPlane)
	case PlaneOff:
	default:
		return nil, &ConfigError{Key: "common_plane_subtraction", Value: fmt.Sprint(int(cfg.Plane))}
	}

	switch cfg.Drift {
	case DriftLinear, DriftMean:
		if cfg.Plane == PlaneOff {
			log.Printf("Drift correction requested without plane subtraction; adding plane subtraction to keep line fits meaningful")
			p.add("plane subtraction", subtractPlane)
		}
		if cfg.Drift == DriftLinear {
			p.add("linear drift correction", subtractLinearDrift)
		} else {
			p.add("mean drift correction", subtractMeanDrift)
		}
	case DriftOff:
	default:
		return nil, &ConfigError{Key: "line_drift_correction", Value: fmt.Sprint(int(cfg.Drift))}
	}

	switch cfg.Shift {
	case ShiftMinimum:
		p.add("minimum data shift", shiftMinimum)
	case ShiftMean:
		p.add("mean data shift", shiftMean)
	case ShiftOff:
	default:
		return nil, &ConfigError{Key: "data_shift", Value: fmt.Sprint(int(cfg.Shift))}
	}

	return p, nil
}

func (p *Pipeline) add(name string, apply func(*heightmap.Matrix, *Report) error) {
	p.stages = append(p.stages, stage{name: name, apply: apply})
}

// Stages returns the names of the stages in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.name
	}
	return names
}

// Result is a corrected height map together with its correction report.
// Only a completed Run produces a Result whose Complete method reports true;
// the analysis pipeline refuses anything else.
type Result struct {
	Matrix *heightmap.Matrix
	Report Report

	complete bool
}

// Complete reports whether the result came from a correction run that
// finished every selected stage.
func (r Result) Complete() bool { return r.complete }

// Run applies the pipeline to a copy of m and returns the corrected matrix
// with the accumulated report. m itself is never modified.
func (p *Pipeline) Run(m *heightmap.Matrix) (Result, error) {
	out := m.Clone()
	var rep Report
	for _, s := range p.stages {
		if err := s.apply(out, &rep); err != nil {
			return Result{}, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return Result{Matrix: out, Report: rep, complete: true}, nil
}
