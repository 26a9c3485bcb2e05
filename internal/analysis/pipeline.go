package analysis

import (
	"fmt"

	"afm-analyzer/internal/correction"
	"afm-analyzer/pkg/heightmap"
)

// RoughnessResult holds the roughness estimate in nanometers. StdNM is only
// meaningful for the 1D variant; the 2D estimate is a single whole-surface
// statistic with no spread.
type RoughnessResult struct {
	Mode        RoughnessMode
	RoughnessNM float64
	StdNM       float64
}

// Report collects the analysis outputs. A nil/empty field means the stage
// was not selected.
type Report struct {
	Heights   []float64
	Roughness *RoughnessResult
}

type stage struct {
	name  string
	apply func(*heightmap.Matrix, *Report) error
}

// Pipeline is an ordered sequence of analysis stages assembled from a Config.
// The distribution runs first by convention so its values are available for
// early diagnostic output; both stages read the same frozen matrix.
type Pipeline struct {
	stages []stage
}

// NewPipeline validates cfg and assembles the analysis stage sequence.
func NewPipeline(cfg Config) (*Pipeline, error) {
	p := &Pipeline{}

	switch cfg.Distribution {
	case DistributionOn:
		p.add("height distribution", collectDistribution)
	case DistributionOff:
	default:
		return nil, &ConfigError{Key: "height_values_distribution", Value: fmt.Sprint(int(cfg.Distribution))}
	}

	switch cfg.Roughness {
	case Roughness1D:
		p.add("1d roughness", roughness1D)
	case Roughness2D:
		p.add("2d roughness", roughness2D)
	case RoughnessOff:
	default:
		return nil, &ConfigError{Key: "roughness", Value: fmt.Sprint(int(cfg.Roughness))}
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

// Run executes the analysis stages over a corrected height map. The input
// must come from a completed correction run; anything else fails with a
// SequenceError before any stage executes.
func (p *Pipeline) Run(res correction.Result, geom heightmap.Geometry) (Report, error) {
	if !res.Complete() {
		return Report{}, &SequenceError{}
	}

	scaled := res.Matrix.Scaled(geom.HeightScale)
	var rep Report
	for _, s := range p.stages {
		if err := s.apply(scaled, &rep); err != nil {
			return Report{}, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return rep, nil
}

func collectDistribution(m *heightmap.Matrix, rep *Report) error {
	// m is already scaled, so collect the values as they are.
	rep.Heights = HeightValues(m, 1)
	return nil
}

func roughness1D(m *heightmap.Matrix, rep *Report) error {
	rough, std, err := RowRoughness(m)
	if err != nil {
		return err
	}
	rep.Roughness = &RoughnessResult{Mode: Roughness1D, RoughnessNM: rough, StdNM: std}
	return nil
}

func roughness2D(m *heightmap.Matrix, rep *Report) error {
	rough, err := SurfaceRoughness(m)
	if err != nil {
		return err
	}
	rep.Roughness = &RoughnessResult{Mode: Roughness2D, RoughnessNM: rough}
	return nil
}
