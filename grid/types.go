package grid

import (
	"errors"

	"github.com/katalvlaran/jigsaw/placement"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptySolution indicates a solution with no placements.
	ErrEmptySolution = errors.New("grid: solution is empty")
	// ErrOverlap indicates two pieces share a coordinate.
	ErrOverlap = errors.New("grid: two pieces on one cell")
	// ErrSeamMismatch indicates adjacent pieces show different labels across their seam.
	ErrSeamMismatch = errors.New("grid: seam labels differ")
)

// hole marks an empty cell in Render output.
const hole = "."

// Layout is a solution on a bounded board. It is immutable once built.
// Cells[y][x] holds the placement at absolute (MinX+x, MinY+y), nil for holes.
type Layout struct {
	Width, Height int
	MinX, MinY    int
	Cells         [][]*placement.Placement
}
