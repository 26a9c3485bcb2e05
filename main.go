// Package main provides the entry point for the AFM Scan Analyzer
// application: it runs the correction and analysis pipelines and shows the
// results in a window. For headless use see cmd/afmanalyze.
package main

import (
	"flag"
	"log"

	fyneapp "fyne.io/fyne/v2/app"

	"afm-analyzer/internal/app"
	"afm-analyzer/internal/version"
	"afm-analyzer/ui/viewer"
)

const appTitle = "AFM Scan Analyzer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	settingsPath := flag.String("settings", "settings.json", "Path to the settings JSON file")
	inputDir := flag.String("input-dir", "input_files", "Directory holding the input TIFF files")
	outputDir := flag.String("output-dir", "output_files", "Directory for plots and the results file")
	results := flag.String("results", "", "Write the results text to this file in the output directory")
	flag.Parse()

	log.Printf("Starting %s v%s (built %s, commit %s)",
		appTitle, version.Version, version.BuildTime, version.GitCommit)

	res, err := app.Run(app.Options{
		SettingsPath: *settingsPath,
		InputDir:     *inputDir,
		OutputDir:    *outputDir,
		ResultsFile:  *results,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	fyneApp := fyneapp.New()
	win := viewer.New(fyneApp, res)
	win.ShowAndRun()
}
