package heightmap

import "fmt"

// ShapeError reports a matrix (or scan line) too small or malformed for the
// requested operation.
type ShapeError struct {
	Op         string // operation that rejected the input
	Rows, Cols int
	Reason     string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %dx%d matrix: %s", e.Op, e.Rows, e.Cols, e.Reason)
}
