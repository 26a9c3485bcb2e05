package correction

import (
	"fmt"
	"strings"
)

// ConfigError reports an unrecognized value for a correction selector.
type ConfigError struct {
	Key   string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid value %q for %q", e.Value, e.Key)
}

// PlaneMode selects whether common plane subtraction runs.
type PlaneMode int

const (
	PlaneOff PlaneMode = iota
	PlaneOn
)

func (m PlaneMode) String() string {
	if m == PlaneOn {
		return "yes"
	}
	return "no"
}

// ParsePlaneMode maps the "common_plane_subtraction" setting to a PlaneMode.
// Values are not case-sensitive.
func ParsePlaneMode(s string) (PlaneMode, error) {
	switch strings.ToLower(s) {
	case "yes":
		return PlaneOn, nil
	case "no":
		return PlaneOff, nil
	}
	return 0, &ConfigError{Key: "common_plane_subtraction", Value: s}
}

// DriftMode selects the line drift correction variant.
type DriftMode int

const (
	DriftOff DriftMode = iota
	DriftLinear
	DriftMean
)

func (m DriftMode) String() string {
	switch m {
	case DriftLinear:
		return "linear"
	case DriftMean:
		return "mean"
	default:
		return "no"
	}
}

// ParseDriftMode maps the "line_drift_correction" setting to a DriftMode.
func ParseDriftMode(s string) (DriftMode, error) {
	switch strings.ToLower(s) {
	case "linear":
		return DriftLinear, nil
	case "mean":
		return DriftMean, nil
	case "no":
		return DriftOff, nil
	}
	return 0, &ConfigError{Key: "line_drift_correction", Value: s}
}

// ShiftMode selects the final vertical offset normalization.
type ShiftMode int

const (
	ShiftOff ShiftMode = iota
	ShiftMinimum
	ShiftMean
)

func (m ShiftMode) String() string {
	switch m {
	case ShiftMinimum:
		return "minimum"
	case ShiftMean:
		return "mean"
	default:
		return "no"
	}
}

// ParseShiftMode maps the "data_shift" setting to a ShiftMode.
func ParseShiftMode(s string) (ShiftMode, error) {
	switch strings.ToLower(s) {
	case "minimum":
		return ShiftMinimum, nil
	case "mean":
		return ShiftMean, nil
	case "no":
		return ShiftOff, nil
	}
	return 0, &ConfigError{Key: "data_shift", Value: s}
}

// Config selects which correction stages run. The zero value disables all
// three stages.
type Config struct {
	Plane PlaneMode
	Drift DriftMode
	Shift ShiftMode
}
