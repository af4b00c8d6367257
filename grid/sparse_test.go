package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// TestSparse_ReadIsPure verifies At never materializes a key.
func TestSparse_ReadIsPure(t *testing.T) {
	s := grid.NewSparse('Z')

	assert.Equal(t, 'Z', s.At(geom.Pt(5, 5)), "absent key reads the default")
	assert.False(t, s.Contains(geom.Pt(5, 5)), "pure read must not insert")
	assert.Equal(t, 0, s.Len())

	c, ok := s.Get(geom.Pt(-3, 7))
	assert.True(t, ok, "every point of a defaulted mapping is addressable")
	assert.Equal(t, 'Z', c)
	assert.Equal(t, 0, s.Len())
}

// TestSparse_EntryMaterializes verifies the documented side effect of
// the mutable path: touching a key inserts the default.
func TestSparse_EntryMaterializes(t *testing.T) {
	s := grid.NewSparse(0)

	h := s.Entry(geom.Pt(2, 3))
	assert.Equal(t, 0, *h, "fresh entry starts at the default")
	assert.True(t, s.Contains(geom.Pt(2, 3)), "Entry inserts the key")
	assert.Equal(t, 1, s.Len())

	*h = 42
	assert.Equal(t, 42, s.At(geom.Pt(2, 3)), "handle writes are visible")

	// A second Entry returns the same cell, not a new default.
	assert.Equal(t, 42, *s.Entry(geom.Pt(2, 3)))
	assert.Equal(t, 1, s.Len())
}

// TestSparse_EntryExtendsDimension shows the materialization is
// observable through the bounding box.
func TestSparse_EntryExtendsDimension(t *testing.T) {
	s := grid.NewSparse('.')
	s.Set(geom.Pt(0, 0), '#')
	assert.Equal(t, geom.Pt(1, 1), s.Dimension())

	_ = s.Entry(geom.Pt(4, 2)) // read-via-mutable-index materializes
	assert.Equal(t, geom.Pt(5, 3), s.Dimension(), "touched key extends the box")
}

// TestSparse_DimensionPanicsEmpty pins the contract violation.
func TestSparse_DimensionPanicsEmpty(t *testing.T) {
	s := grid.NewSparse(0)
	assert.Panics(t, func() { s.Dimension() }, "dimension of an empty mapping is undefined")
}

// TestSparse_DimensionNegativeKeys spans the elementwise box across
// quadrants.
func TestSparse_DimensionNegativeKeys(t *testing.T) {
	s := grid.NewSparse(0)
	s.Set(geom.Pt(-2, -1), 1)
	s.Set(geom.Pt(3, 4), 2)

	assert.Equal(t, geom.Pt(6, 6), s.Dimension())
}

// TestSparse_AdjacentUnfiltered returns all four positions regardless
// of presence, in the fixed order, reading absent ones as the default.
func TestSparse_AdjacentUnfiltered(t *testing.T) {
	s := grid.NewSparse('.')
	s.Set(geom.Pt(0, -1), '#') // above the probe

	ns := s.Adjacent(geom.Pt(0, 0))
	require.Len(t, ns, 4, "sparse adjacency is never filtered")
	assert.Equal(t, geom.Pt(0, -1), ns[0].Point)
	assert.Equal(t, '#', ns[0].Cell)
	assert.Equal(t, geom.Pt(1, 0), ns[1].Point)
	assert.Equal(t, '.', ns[1].Cell, "absent neighbor reads the default")
	assert.Equal(t, geom.Pt(0, 1), ns[2].Point)
	assert.Equal(t, geom.Pt(-1, 0), ns[3].Point)

	assert.Equal(t, 1, s.Len(), "adjacency reads must not materialize")
}

// TestSparse_ToDense bakes keys {(0,0):A, (2,3):B} with
// default Z → a 3×4 grid with A, B and Z everywhere else.
func TestSparse_ToDense(t *testing.T) {
	s := grid.NewSparse('Z')
	s.Set(geom.Pt(0, 0), 'A')
	s.Set(geom.Pt(2, 3), 'B')

	g, err := s.ToDense()
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(3, 4), g.Dimension())
	assert.Equal(t, 'A', g.At(geom.Pt(0, 0)))
	assert.Equal(t, 'B', g.At(geom.Pt(2, 3)))

	defaults := 0
	for p := range g.Coordinates() {
		if g.At(p) == 'Z' {
			defaults++
		}
	}
	assert.Equal(t, 10, defaults, "every other cell holds the default")
}

// TestSparse_ToDenseRebases shifts negative keys so the minimum corner
// lands at the origin.
func TestSparse_ToDenseRebases(t *testing.T) {
	s := grid.NewSparse('.')
	s.Set(geom.Pt(-1, -2), 'a')
	s.Set(geom.Pt(1, 0), 'b')

	g, err := s.ToDense()
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(3, 3), g.Dimension())
	assert.Equal(t, 'a', g.At(geom.Pt(0, 0)), "min key rebased to origin")
	assert.Equal(t, 'b', g.At(geom.Pt(2, 2)))
}

// TestSparse_ToDenseEmpty returns the recoverable form of the same
// contract Dimension enforces by panic.
func TestSparse_ToDenseEmpty(t *testing.T) {
	s := grid.NewSparse(0)
	_, err := s.ToDense()
	assert.ErrorIs(t, err, grid.ErrNoCells)
}

// TestSparse_Display renders through the dense bake.
func TestSparse_Display(t *testing.T) {
	s := grid.NewSparse('.')
	s.Set(geom.Pt(0, 0), '#')
	s.Set(geom.Pt(2, 1), '#')

	assert.Equal(t, "#..\n..#", grid.DisplayRunes(s))

	empty := grid.NewSparse('.')
	assert.Equal(t, "", grid.DisplayRunes(empty), "empty mapping renders empty")
}

// TestSparse_Position matches only materialized cells.
func TestSparse_Position(t *testing.T) {
	s := grid.NewSparse(0)
	s.Set(geom.Pt(7, 7), 9)

	p, ok := s.Position(func(c int) bool { return c == 9 })
	require.True(t, ok)
	assert.Equal(t, geom.Pt(7, 7), p)

	_, ok = s.Position(func(c int) bool { return c == 0 })
	assert.False(t, ok, "default cells are absent, not matched")
}
