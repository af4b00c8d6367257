package grid

import (
	"errors"
	"iter"

	"github.com/katalvlaran/gridkit/geom"
)

// Sentinel errors for grid construction and conversion.
var (
	// ErrEmptyGrid indicates construction from no rows, no columns or blank text.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: dimensions must be positive")
	// ErrOutOfBounds reports an indexed point outside the grid; At and Set
	// panic with this message since out-of-bounds indexing is a contract
	// violation, not a recoverable condition.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrNoCells indicates a dimension query or dense bake of an empty sparse grid.
	ErrNoCells = errors.New("grid: sparse grid has no cells")
)

// Neighbor pairs a coordinate with the cell value stored there.
type Neighbor[C any] struct {
	Point geom.Point
	Cell  C
}

// AdjacentOffsets lists the four orthogonal deltas in the fixed order
// up, right, down, left ("up" decreases Y). Algorithms that interpret
// "first match" semantics depend on exactly this order.
var AdjacentOffsets = [4]geom.Point{
	{X: 0, Y: -1}, // up
	{X: 1, Y: 0},  // right
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
}

// NeighbourOffsets lists the eight deltas of the 3×3 block around the
// origin in row-major order, skipping the center:
// NW, N, NE, W, E, SW, S, SE.
var NeighbourOffsets = [8]geom.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// OrthogonalIndex maps a unit orthogonal delta to its position in
// AdjacentOffsets (up=0, right=1, down=2, left=3). The second result is
// false for any other vector, including diagonals and zero.
func OrthogonalIndex(delta geom.Point) (int, bool) {
	for i, d := range AdjacentOffsets {
		if d == delta {
			return i, true
		}
	}

	return 0, false
}

// View is the capability surface shared by Grid, Sparse and Transform.
// It is the contract gridpath traverses against; any grid-like structure
// implementing it plugs into the same algorithms.
//
// At and Set panic on contract violations (see each implementation);
// Get is the recoverable probe and never panics.
type View[C any] interface {
	// At returns the cell at p. Panics where p violates the
	// implementation's indexing contract.
	At(p geom.Point) C
	// Set stores c at p. Same contract as At.
	Set(p geom.Point, c C)
	// Get returns the cell at p and whether p is addressable.
	Get(p geom.Point) (C, bool)
	// Contains reports whether p is part of the structure.
	Contains(p geom.Point) bool
	// Dimension returns the extent as (width, height).
	Dimension() geom.Point
	// Position returns the first point whose cell satisfies pred,
	// in the implementation's iteration order.
	Position(pred func(C) bool) (geom.Point, bool)
	// Adjacent returns the orthogonal neighbors of p in the fixed
	// order up, right, down, left.
	Adjacent(p geom.Point) []Neighbor[C]
	// Coordinates returns a restartable sequence of addressable points.
	Coordinates() iter.Seq[geom.Point]
	// Display renders the structure with one formatted cell after
	// another, rows joined by '\n', no trailing newline.
	Display(format func(C) string) string
}

// Compile-time conformance checks for every grid kind.
var (
	_ View[int] = (*Grid[int])(nil)
	_ View[int] = (*Sparse[int])(nil)
	_ View[int] = (*Transform[int])(nil)
)
