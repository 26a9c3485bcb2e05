package analysis

import (
	"fmt"
	"strings"
)

// ConfigError reports an unrecognized value for an analysis selector.
type ConfigError struct {
	Key   string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid value %q for %q", e.Value, e.Key)
}

// SequenceError reports analysis invoked on a height map that has not been
// through a completed correction run. This is a programming-contract
// violation, not a data problem.
type SequenceError struct{}

func (e *SequenceError) Error() string {
	return "analysis invoked before image correction completed"
}

// DistributionMode selects whether the height-value distribution is collected.
type DistributionMode int

const (
	DistributionOff DistributionMode = iota
	DistributionOn
)

func (m DistributionMode) String() string {
	if m == DistributionOn {
		return "yes"
	}
	return "no"
}

// ParseDistributionMode maps the "height_values_distribution" setting to a
// DistributionMode. Values are not case-sensitive.
func ParseDistributionMode(s string) (DistributionMode, error) {
	switch strings.ToLower(s) {
	case "yes":
		return DistributionOn, nil
	case "no":
		return DistributionOff, nil
	}
	return 0, &ConfigError{Key: "height_values_distribution", Value: s}
}

// RoughnessMode selects the roughness estimator variant.
type RoughnessMode int

const (
	RoughnessOff RoughnessMode = iota
	Roughness1D
	Roughness2D
)

func (m RoughnessMode) String() string {
	switch m {
	case Roughness1D:
		return "1d"
	case Roughness2D:
		return "2d"
	default:
		return "no"
	}
}

// ParseRoughnessMode maps the "roughness" setting to a RoughnessMode.
func ParseRoughnessMode(s string) (RoughnessMode, error) {
	switch strings.ToLower(s) {
	case "1d":
		return Roughness1D, nil
	case "2d":
		return Roughness2D, nil
	case "no":
		return RoughnessOff, nil
	}
	return 0, &ConfigError{Key: "roughness", Value: s}
}

// Config selects which analysis stages run. The zero value disables both.
type Config struct {
	Distribution DistributionMode
	Roughness    RoughnessMode
}
