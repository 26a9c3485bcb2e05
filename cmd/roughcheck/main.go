// Command roughcheck computes a quick roughness estimate for a single AFM
// TIFF, without a settings file. Useful for sanity-checking a scan before a
// full analysis run.
package main

import (
	"flag"
	"fmt"
	"os"

	"afm-analyzer/internal/afmfile"
	"afm-analyzer/internal/analysis"
)

func main() {
	imagePath := flag.String("image", "", "Path to the AFM TIFF file")
	scale := flag.Float64("scale", 1.0, "Height scaling factor (raw units to nm)")
	mode := flag.String("mode", "1d", "Roughness variant: 1d or 2d")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: roughcheck -image <path> [-scale 1.0] [-mode 1d|2d]")
		os.Exit(1)
	}

	m, err := afmfile.Read(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roughcheck: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %dx%d height map\n", m.Rows(), m.Cols())

	scaled := m.Scaled(*scale)

	switch *mode {
	case "1d":
		rough, std, err := analysis.RowRoughness(scaled)
		if err != nil {
			fmt.Fprintf(os.Stderr, "roughcheck: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("1D roughness = %g nm (std %g nm)\n", rough, std)
	case "2d":
		rough, err := analysis.SurfaceRoughness(scaled)
		if err != nil {
			fmt.Fprintf(os.Stderr, "roughcheck: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("2D roughness = %g nm\n", rough)
	default:
		fmt.Fprintf(os.Stderr, "roughcheck: unknown mode %q (use 1d or 2d)\n", *mode)
		os.Exit(1)
	}
}
