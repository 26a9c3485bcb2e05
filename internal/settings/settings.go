// Package settings loads the JSON settings file that drives an analysis run
// and maps its closed-enum values onto the typed pipeline configurations.
package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"afm-analyzer/internal/analysis"
	"afm-analyzer/internal/correction"
	"afm-analyzer/pkg/heightmap"
)

// Default output file names, used when the settings file leaves them blank.
const (
	DefaultImage2D      = "2d_image.png"
	DefaultImage3D      = "3d_image.png"
	DefaultDistribution = "height_values_distribution.png"
	DefaultColorMap     = "gray"
)

// file mirrors the on-disk settings layout.
type file struct {
	Files      filesSpec      `json:"files_specifications"`
	Correction correctionSpec `json:"image_correction"`
	Analysis   analysisSpec   `json:"data_analysis"`
	Graphics   graphicsSpec   `json:"graphics"`
}

type filesSpec struct {
	InputFileName       string  `json:"input_file_name"`
	ScanningRate        int     `json:"scanning_rate"`
	ImageLength         float64 `json:"image_length"`
	HeightScalingFactor float64 `json:"height_scaling_factor"`
	Image2DOutput       string  `json:"2D_image_output_file_name"`
	Image3DOutput       string  `json:"3D_image_output_file_name"`
	DistributionOutput  string  `json:"distribution_output_file_name"`
}

type correctionSpec struct {
	CommonPlaneSubtraction string `json:"common_plane_subtraction"`
	LineDriftCorrection    string `json:"line_drift_correction"`
	DataShift              string `json:"data_shift"`
}

type analysisSpec struct {
	HeightValuesDistribution string `json:"height_values_distribution"`
	Roughness                string `json:"roughness"`
}

type graphicsSpec struct {
	ColorMap string `json:"color_map"`
}

// Settings is a validated analysis run configuration.
type Settings struct {
	InputFile string
	Geometry  heightmap.Geometry

	Correction correction.Config
	Analysis   analysis.Config

	ColorMap           string
	Image2DOutput      string
	Image3DOutput      string
	DistributionOutput string
}

// Load reads and validates a settings file. Selector values are checked here
// so a bad configuration fails before any data is touched; the pipeline
// builders re-check the typed values on construction.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("settings file not found: %s", path)
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	return Parse(data)
}

// Parse validates raw settings JSON.
func Parse(data []byte) (*Settings, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing settings JSON: %w", err)
	}

	if f.Files.InputFileName == "" {
		return nil, fmt.Errorf("files_specifications.input_file_name is required")
	}
	if f.Files.ScanningRate <= 0 {
		return nil, fmt.Errorf("files_specifications.scanning_rate must be positive")
	}
	if f.Files.ImageLength <= 0 {
		return nil, fmt.Errorf("files_specifications.image_length must be positive")
	}
	if f.Files.HeightScalingFactor == 0 {
		return nil, fmt.Errorf("files_specifications.height_scaling_factor must be non-zero")
	}

	s := &Settings{
		InputFile: f.Files.InputFileName,
		Geometry: heightmap.Geometry{
			ScanningRate: f.Files.ScanningRate,
			ImageLength:  f.Files.ImageLength,
			HeightScale:  f.Files.HeightScalingFactor,
		},
		ColorMap:           orDefault(f.Graphics.ColorMap, DefaultColorMap),
		Image2DOutput:      orDefault(f.Files.Image2DOutput, DefaultImage2D),
		Image3DOutput:      orDefault(f.Files.Image3DOutput, DefaultImage3D),
		DistributionOutput: orDefault(f.Files.DistributionOutput, DefaultDistribution),
	}

	var err error
	if s.Correction.Plane, err = correction.ParsePlaneMode(f.Correction.CommonPlaneSubtraction); err != nil {
		return nil, err
	}
	if s.Correction.Drift, err = correction.ParseDriftMode(f.Correction.LineDriftCorrection); err != nil {
		return nil, err
	}
	if s.Correction.Shift, err = correction.ParseShiftMode(f.Correction.DataShift); err != nil {
		return nil, err
	}
	if s.Analysis.Distribution, err = analysis.ParseDistributionMode(f.Analysis.HeightValuesDistribution); err != nil {
		return nil, err
	}
	if s.Analysis.Roughness, err = analysis.ParseRoughnessMode(f.Analysis.Roughness); err != nil {
		return nil, err
	}

	return s, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
