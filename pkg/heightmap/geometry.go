package heightmap

import "fmt"

// Geometry holds the physical scan parameters recorded alongside a height map.
// It is immutable for the duration of one analysis run.
type Geometry struct {
	ScanningRate int     // samples acquired per scan line; must equal Cols()
	ImageLength  float64 // physical side length of the scanned area, in micrometers
	HeightScale  float64 // factor converting raw heights to nanometers
}

// Validate checks the geometry against a loaded matrix.
func (g Geometry) Validate(m *Matrix) error {
	if g.ScanningRate != m.Cols() {
		return fmt.Errorf("scanning rate %d does not match %d samples per line", g.ScanningRate, m.Cols())
	}
	if g.ImageLength <= 0 {
		return fmt.Errorf("image length must be positive, got %g", g.ImageLength)
	}
	if g.HeightScale == 0 {
		return fmt.Errorf("height scaling factor must be non-zero")
	}
	return nil
}

// Coordinates returns the physical positions of the sample columns (or rows),
// evenly spaced over the image length. Used for plot axes only; the fits in
// the correction pipeline work in sample-index coordinates.
func (g Geometry) Coordinates(n int) []float64 {
	coords := make([]float64, n)
	if n == 1 {
		return coords
	}
	step := g.ImageLength / float64(n-1)
	for i := range coords {
		coords[i] = float64(i) * step
	}
	return coords
}
