// Package app wires the loader, correction and analysis pipelines, results
// writer, and renderers into one analysis run shared by the GUI and the
// batch CLI.
package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"afm-analyzer/internal/afmfile"
	"afm-analyzer/internal/analysis"
	"afm-analyzer/internal/correction"
	"afm-analyzer/internal/render"
	"afm-analyzer/internal/report"
	"afm-analyzer/internal/settings"
	"afm-analyzer/pkg/heightmap"
)

// Options controls one analysis run.
type Options struct {
	SettingsPath string
	InputDir     string // directory holding the input TIFF; "" = settings path as-is
	OutputDir    string // plots and results land here
	ResultsFile  string // results text file name; "" disables the file sink
}

// Result is everything a run produced, kept for display.
type Result struct {
	Settings *settings.Settings

	Raw       *heightmap.Matrix
	Corrected *heightmap.Matrix

	Correction correction.Report
	Analysis   analysis.Report

	ResultsText string

	Image2DPath      string
	Image3DPath      string
	DistributionPath string
}

// Run executes the full pipeline: load, correct, analyze, write results,
// render plots.
func Run(opts Options) (*Result, error) {
	cfg, err := settings.Load(opts.SettingsPath)
	if err != nil {
		return nil, err
	}

	inputPath := cfg.InputFile
	if opts.InputDir != "" && !filepath.IsAbs(inputPath) {
		inputPath = filepath.Join(opts.InputDir, inputPath)
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	raw, err := afmfile.Load(inputPath, cfg.Geometry)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %s: %dx%d samples", filepath.Base(inputPath), raw.Rows(), raw.Cols())

	corrPipe, err := correction.NewPipeline(cfg.Correction)
	if err != nil {
		return nil, err
	}
	corrected, err := corrPipe.Run(raw)
	if err != nil {
		return nil, fmt.Errorf("image correction: %w", err)
	}

	anPipe, err := analysis.NewPipeline(cfg.Analysis)
	if err != nil {
		return nil, err
	}
	anRep, err := anPipe.Run(corrected, cfg.Geometry)
	if err != nil {
		return nil, fmt.Errorf("data analysis: %w", err)
	}

	// The results sink is chosen once here; the pipelines never check
	// whether writing is enabled.
	var buf report.Buffer
	sink := report.Sink(&buf)
	if opts.ResultsFile != "" {
		fileSink, err := report.NewFileSink(filepath.Join(outDir, opts.ResultsFile))
		if err != nil {
			return nil, err
		}
		sink = report.MultiSink(&buf, fileSink)
	}
	if err := report.WriteResults(sink, corrected.Report, anRep); err != nil {
		return nil, err
	}

	res := &Result{
		Settings:    cfg,
		Raw:         raw,
		Corrected:   corrected.Matrix,
		Correction:  corrected.Report,
		Analysis:    anRep,
		ResultsText: buf.String(),
		Image2DPath: filepath.Join(outDir, cfg.Image2DOutput),
		Image3DPath: filepath.Join(outDir, cfg.Image3DOutput),
	}

	if err := render.SaveHeightMap2D(res.Corrected, cfg.ColorMap, res.Image2DPath); err != nil {
		return nil, err
	}
	if err := render.SaveSurface3D(res.Corrected, cfg.Geometry, cfg.ColorMap, res.Image3DPath); err != nil {
		return nil, err
	}
	if anRep.Heights != nil {
		res.DistributionPath = filepath.Join(outDir, cfg.DistributionOutput)
		if err := render.SaveHistogram(anRep.Heights, res.DistributionPath); err != nil {
			return nil, err
		}
	}

	return res, nil
}
