// Command afmanalyze runs the AFM correction and analysis pipelines without
// the GUI and writes the output plots plus an optional results file.
package main

import (
	"flag"
	"fmt"
	"os"

	"afm-analyzer/internal/app"
)

func main() {
	settingsPath := flag.String("settings", "settings.json", "Path to the settings JSON file")
	inputDir := flag.String("input-dir", "input_files", "Directory holding the input TIFF files")
	outputDir := flag.String("output-dir", "output_files", "Directory for plots and the results file")
	results := flag.String("results", "", "Write the results text to this file in the output directory")
	flag.Parse()

	res, err := app.Run(app.Options{
		SettingsPath: *settingsPath,
		InputDir:     *inputDir,
		OutputDir:    *outputDir,
		ResultsFile:  *results,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "afmanalyze: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Corrected %dx%d height map\n", res.Corrected.Rows(), res.Corrected.Cols())
	if res.ResultsText != "" {
		fmt.Println()
		fmt.Print(res.ResultsText)
	}
	fmt.Printf("\n2D map: %s\n", res.Image2DPath)
	fmt.Printf("3D surface: %s\n", res.Image3DPath)
	if res.DistributionPath != "" {
		fmt.Printf("Distribution: %s\n", res.DistributionPath)
	}
}
