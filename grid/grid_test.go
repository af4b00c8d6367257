package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// ident is the identity rune mapper used throughout the text fixtures.
func ident(r rune) rune { return r }

// mustRead parses a fixture or fails the test immediately.
func mustRead(t *testing.T, s string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.Read(s, ident)
	require.NoError(t, err, "fixture must parse")

	return g
}

// TestRead_Errors verifies construction-time validation.
func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Blank", "", grid.ErrEmptyGrid},
		{"WhitespaceOnly", "  \n\t\n", grid.ErrEmptyGrid},
		{"RaggedShort", "###\n..\n...", grid.ErrRagged},
		{"RaggedLong", "##\n###", grid.ErrRagged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Read(tc.input, ident)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_Errors verifies row-based construction validation.
func TestNew_Errors(t *testing.T) {
	_, err := grid.New[int](nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "no rows")

	_, err = grid.New([][]int{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "no columns")

	_, err = grid.New([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, grid.ErrRagged, "unequal rows")
}

// TestNewWithDimensions_Errors rejects non-positive axes.
func TestNewWithDimensions_Errors(t *testing.T) {
	for _, dim := range []geom.Point{geom.Pt(0, 3), geom.Pt(3, 0), geom.Pt(-1, 2)} {
		_, err := grid.NewWithDimensions(dim, func(geom.Point) int { return 0 })
		assert.ErrorIs(t, err, grid.ErrInvalidDimensions, "dim %v", dim)
	}
}

// TestGrid_IndexAndVectors replays the source fixture: index a parsed
// grid directly and through a displacement.
func TestGrid_IndexAndVectors(t *testing.T) {
	g := mustRead(t, "###\n...\n...")

	p := geom.Pt(1, 1)
	v := geom.Pt(1, -1)

	assert.Equal(t, '.', g.At(p))
	assert.Equal(t, '#', g.At(p.Add(v)))
	assert.False(t, g.Contains(p.Add(v.Scale(8))), "far displacement leaves the grid")
}

// TestGrid_Dimension checks that n rows of length w report (w,n).
func TestGrid_Dimension(t *testing.T) {
	g := mustRead(t, "#####\n.....\n.....")
	assert.Equal(t, geom.Pt(5, 3), g.Dimension())
}

// TestGrid_GetContainsAgree is the core probe property: Get succeeds
// exactly on contained points and agrees with At there.
func TestGrid_GetContainsAgree(t *testing.T) {
	g := mustRead(t, "ab\ncd")

	for p := range g.Coordinates() {
		c, ok := g.Get(p)
		require.True(t, ok, "contained point %v must Get", p)
		assert.Equal(t, g.At(p), c)
	}
	for _, p := range []geom.Point{geom.Pt(-1, 0), geom.Pt(0, -1), geom.Pt(2, 0), geom.Pt(0, 2)} {
		assert.False(t, g.Contains(p))
		_, ok := g.Get(p)
		assert.False(t, ok, "outside point %v must not Get", p)
	}
}

// TestGrid_AtPanicsOutOfBounds pins the contract-violation behavior.
func TestGrid_AtPanicsOutOfBounds(t *testing.T) {
	g := mustRead(t, "ab\ncd")

	assert.Panics(t, func() { g.At(geom.Pt(5, 0)) }, "At out of bounds must panic")
	assert.Panics(t, func() { g.Set(geom.Pt(0, -1), 'x') }, "Set out of bounds must panic")
}

// TestGrid_SetMutates writes through the checked path and reads back.
func TestGrid_SetMutates(t *testing.T) {
	g := mustRead(t, "..\n..")
	g.Set(geom.Pt(1, 0), '#')

	assert.Equal(t, '#', g.At(geom.Pt(1, 0)))
	assert.Equal(t, ".#\n..", grid.DisplayRunes(g))
}

// TestGrid_RoundTrip parses, displays and re-parses a character grid.
func TestGrid_RoundTrip(t *testing.T) {
	const s = "#.#\n.#.\n#.#"
	g := mustRead(t, s)

	out := grid.DisplayRunes(g)
	assert.Equal(t, s, out, "display must reproduce the trimmed input")

	again := mustRead(t, out)
	assert.True(t, grid.Equal(g, again), "read(display(g)) must equal g")
}

// TestGrid_Position finds the first match in row-major order.
func TestGrid_Position(t *testing.T) {
	g := mustRead(t, "...\n.#.\n..#")

	p, ok := g.Position(func(r rune) bool { return r == '#' })
	require.True(t, ok)
	assert.Equal(t, geom.Pt(1, 1), p, "row-major order finds (1,1) before (2,2)")

	_, ok = g.Position(func(r rune) bool { return r == 'X' })
	assert.False(t, ok, "no match is an expected outcome")
}

// TestGrid_AdjacentOrder pins the up, right, down, left order and the
// bounds filtering at corners and edges.
func TestGrid_AdjacentOrder(t *testing.T) {
	g := mustRead(t, "abc\ndef\nghi")

	// Interior point keeps all four, in order.
	ns := g.Adjacent(geom.Pt(1, 1))
	require.Len(t, ns, 4)
	assert.Equal(t, geom.Pt(1, 0), ns[0].Point, "up first")
	assert.Equal(t, geom.Pt(2, 1), ns[1].Point, "right second")
	assert.Equal(t, geom.Pt(1, 2), ns[2].Point, "down third")
	assert.Equal(t, geom.Pt(0, 1), ns[3].Point, "left fourth")
	assert.Equal(t, 'b', ns[0].Cell)

	// Top-left corner keeps right and down only.
	ns = g.Adjacent(geom.Pt(0, 0))
	require.Len(t, ns, 2)
	assert.Equal(t, geom.Pt(1, 0), ns[0].Point)
	assert.Equal(t, geom.Pt(0, 1), ns[1].Point)
}

// TestGrid_NeighboursOrder pins the 8-connected row-major scan order.
func TestGrid_NeighboursOrder(t *testing.T) {
	g := mustRead(t, "abc\ndef\nghi")

	ns := g.Neighbours(geom.Pt(1, 1))
	require.Len(t, ns, 8)
	want := []rune{'a', 'b', 'c', 'd', 'f', 'g', 'h', 'i'}
	for i, n := range ns {
		assert.Equal(t, want[i], n.Cell, "neighbour %d", i)
	}

	// Bottom-right corner keeps NW, N, W.
	ns = g.Neighbours(geom.Pt(2, 2))
	require.Len(t, ns, 3)
	assert.Equal(t, []rune{'e', 'f', 'h'}, []rune{ns[0].Cell, ns[1].Cell, ns[2].Cell})
}

// TestGrid_CoordinatesRestartable runs the sequence twice and checks
// the row-major order both times.
func TestGrid_CoordinatesRestartable(t *testing.T) {
	g := mustRead(t, "ab\ncd")
	want := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1)}

	for pass := 0; pass < 2; pass++ {
		var got []geom.Point
		for p := range g.Coordinates() {
			got = append(got, p)
		}
		assert.Equal(t, want, got, "pass %d", pass)
	}
}

// TestGrid_GeneratorFill builds a grid from a coordinate function.
func TestGrid_GeneratorFill(t *testing.T) {
	g, err := grid.NewWithDimensions(geom.Pt(3, 2), func(p geom.Point) int { return p.Y*10 + p.X })
	require.NoError(t, err)

	assert.Equal(t, geom.Pt(3, 2), g.Dimension())
	assert.Equal(t, 0, g.At(geom.Pt(0, 0)))
	assert.Equal(t, 2, g.At(geom.Pt(2, 0)))
	assert.Equal(t, 12, g.At(geom.Pt(2, 1)))
}

// TestGrid_Map transforms cells without touching the shape.
func TestGrid_Map(t *testing.T) {
	g := mustRead(t, "#.\n.#")
	m := grid.Map(g, func(r rune) bool { return r == '#' })

	assert.Equal(t, g.Dimension(), m.Dimension())
	assert.True(t, m.At(geom.Pt(0, 0)))
	assert.False(t, m.At(geom.Pt(1, 0)))
	assert.True(t, m.At(geom.Pt(1, 1)))
}

// TestGrid_CloneIsDeep mutates a clone and checks the original survives.
func TestGrid_CloneIsDeep(t *testing.T) {
	g := mustRead(t, "..\n..")
	c := g.Clone()
	c.Set(geom.Pt(0, 0), '#')

	assert.Equal(t, '.', g.At(geom.Pt(0, 0)), "original untouched")
	assert.Equal(t, '#', c.At(geom.Pt(0, 0)))
	assert.False(t, grid.Equal(g, c))
}

// TestOrthogonalIndex maps unit deltas to their adjacency slots and
// rejects everything else.
func TestOrthogonalIndex(t *testing.T) {
	cases := []struct {
		delta geom.Point
		idx   int
		ok    bool
	}{
		{geom.Pt(0, -1), 0, true}, // up
		{geom.Pt(1, 0), 1, true},  // right
		{geom.Pt(0, 1), 2, true},  // down
		{geom.Pt(-1, 0), 3, true}, // left
		{geom.Pt(0, 0), 0, false}, // zero
		{geom.Pt(1, 1), 0, false}, // diagonal
		{geom.Pt(2, 0), 0, false}, // too far
		{geom.Pt(-1, -1), 0, false},
	}
	for _, tc := range cases {
		idx, ok := grid.OrthogonalIndex(tc.delta)
		assert.Equal(t, tc.ok, ok, "delta %v", tc.delta)
		if tc.ok {
			assert.Equal(t, tc.idx, idx, "delta %v", tc.delta)
		}
	}
}
