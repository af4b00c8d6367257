package grid

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// Grid is a rectangular 2D container addressed by geom.Point.
// Cells live in a flat row-major slice (y*width + x) for cache
// friendliness; width fixes the row length.
type Grid[C any] struct {
	cells []C
	width int
}

// New builds a Grid from a non-empty sequence of equal-length rows.
// The width is taken from the first row.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrRagged if any row length differs.
// Complexity: O(W×H) time and memory.
func New[C any](rows [][]C) (*Grid[C], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	cells := make([]C, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, i, len(row), width)
		}
		cells = append(cells, row...)
	}

	return &Grid[C]{cells: cells, width: width}, nil
}

// Read parses a line-delimited string into a Grid, applying cell to
// every rune. The input is trimmed of leading/trailing whitespace first,
// then split on '\n'; every line must have the same rune count.
// Returns ErrEmptyGrid for blank input, ErrRagged for unequal lines.
// Complexity: O(len(input)).
func Read[C any](input string, cell func(rune) C) (*Grid[C], error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(trimmed, "\n")
	rows := make([][]C, 0, len(lines))
	for _, line := range lines {
		runes := []rune(line)
		row := make([]C, 0, len(runes))
		for _, r := range runes {
			row = append(row, cell(r))
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// NewWithDimensions produces a fresh dim.X×dim.Y grid by invoking gen
// for every point in row-major order.
// Returns ErrInvalidDimensions unless both axes are positive.
// Complexity: O(W×H) calls to gen.
func NewWithDimensions[C any](dim geom.Point, gen func(geom.Point) C) (*Grid[C], error) {
	if dim.X <= 0 || dim.Y <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDimensions, dim)
	}
	cells := make([]C, 0, dim.X*dim.Y)
	for y := 0; y < dim.Y; y++ {
		for x := 0; x < dim.X; x++ {
			cells = append(cells, gen(geom.Pt(x, y)))
		}
	}

	return &Grid[C]{cells: cells, width: dim.X}, nil
}

// NewUniform produces a dim.X×dim.Y grid with every cell set to c.
func NewUniform[C any](dim geom.Point, c C) (*Grid[C], error) {
	return NewWithDimensions(dim, func(geom.Point) C { return c })
}

// index maps p to its flat row-major offset. Callers validate bounds.
func (g *Grid[C]) index(p geom.Point) int {
	return p.Y*g.width + p.X
}

// At returns the cell at p.
// Out-of-bounds access is a contract violation and panics; use Get for
// a recoverable probe. Complexity: O(1).
func (g *Grid[C]) At(p geom.Point) C {
	if !g.Contains(p) {
		panic(fmt.Sprintf("%v: %v of %v", ErrOutOfBounds, p, g.Dimension()))
	}

	return g.cells[g.index(p)]
}

// Set stores c at p. Same bounds contract as At. Complexity: O(1).
func (g *Grid[C]) Set(p geom.Point, c C) {
	if !g.Contains(p) {
		panic(fmt.Sprintf("%v: %v of %v", ErrOutOfBounds, p, g.Dimension()))
	}
	g.cells[g.index(p)] = c
}

// Get returns the cell at p, or the zero value and false when p is out
// of bounds. Absence is an expected outcome, never a panic.
func (g *Grid[C]) Get(p geom.Point) (C, bool) {
	if !g.Contains(p) {
		var zero C
		return zero, false
	}

	return g.cells[g.index(p)], true
}

// Contains reports whether both coordinates lie within [0, dimension).
func (g *Grid[C]) Contains(p geom.Point) bool {
	dim := g.Dimension()

	return p.X >= 0 && p.Y >= 0 && p.X < dim.X && p.Y < dim.Y
}

// Dimension returns the extent as (width, height); (0,0) for an empty grid.
func (g *Grid[C]) Dimension() geom.Point {
	if len(g.cells) == 0 {
		return geom.Point{}
	}

	return geom.Pt(g.width, len(g.cells)/g.width)
}

// Position returns the first point in row-major order (x varies fastest)
// whose cell satisfies pred, or false if no cell matches.
// Complexity: O(W×H).
func (g *Grid[C]) Position(pred func(C) bool) (geom.Point, bool) {
	for p := range g.Coordinates() {
		if pred(g.cells[g.index(p)]) {
			return p, true
		}
	}

	return geom.Point{}, false
}

// Adjacent returns the in-bounds orthogonal neighbors of p, paired with
// their cells, in the fixed order up, right, down, left.
func (g *Grid[C]) Adjacent(p geom.Point) []Neighbor[C] {
	out := make([]Neighbor[C], 0, len(AdjacentOffsets))
	for _, d := range AdjacentOffsets {
		n := p.Add(d)
		if !g.Contains(n) {
			continue
		}
		out = append(out, Neighbor[C]{Point: n, Cell: g.cells[g.index(n)]})
	}

	return out
}

// Neighbours returns the in-bounds 8-connected neighbors of p in the
// fixed order NW, N, NE, W, E, SW, S, SE.
func (g *Grid[C]) Neighbours(p geom.Point) []Neighbor[C] {
	out := make([]Neighbor[C], 0, len(NeighbourOffsets))
	for _, d := range NeighbourOffsets {
		n := p.Add(d)
		if !g.Contains(n) {
			continue
		}
		out = append(out, Neighbor[C]{Point: n, Cell: g.cells[g.index(n)]})
	}

	return out
}

// Coordinates returns a restartable row-major sequence of every point
// in the grid (x varies fastest within a fixed y).
func (g *Grid[C]) Coordinates() iter.Seq[geom.Point] {
	dim := g.Dimension()

	return func(yield func(geom.Point) bool) {
		for y := 0; y < dim.Y; y++ {
			for x := 0; x < dim.X; x++ {
				if !yield(geom.Pt(x, y)) {
					return
				}
			}
		}
	}
}

// Display renders the grid one formatted cell after another, rows
// joined by '\n', with no trailing newline.
func (g *Grid[C]) Display(format func(C) string) string {
	dim := g.Dimension()
	var sb strings.Builder
	for y := 0; y < dim.Y; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := g.cells[y*g.width : (y+1)*g.width]
		for _, c := range row {
			sb.WriteString(format(c))
		}
	}

	return sb.String()
}

// Clone returns a deep copy of the grid.
// Complexity: O(W×H) time and memory.
func (g *Grid[C]) Clone() *Grid[C] {
	cells := make([]C, len(g.cells))
	copy(cells, g.cells)

	return &Grid[C]{cells: cells, width: g.width}
}

// Map produces a new grid of transformed cells with the same shape and
// storage order. Complexity: O(W×H) calls to f.
func Map[C, T any](g *Grid[C], f func(C) T) *Grid[T] {
	cells := make([]T, 0, len(g.cells))
	for _, c := range g.cells {
		cells = append(cells, f(c))
	}

	return &Grid[T]{cells: cells, width: g.width}
}

// Equal reports whether two grids have identical shape and cells.
func Equal[C comparable](a, b *Grid[C]) bool {
	if a.width != b.width || len(a.cells) != len(b.cells) {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}

	return true
}

// DisplayRunes renders any rune-celled view directly, one rune per cell.
func DisplayRunes(v View[rune]) string {
	return v.Display(func(r rune) string { return string(r) })
}
