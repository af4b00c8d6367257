package grid

import (
	"iter"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// Transform is a rotated/reflected read-write view over a Grid. It owns
// no cells: every access maps the visible coordinate through an exact
// integer matrix and forwards to the underlying grid.
//
// The view assumes exclusive access to its grid for its whole lifetime.
// Mutating the grid through another alias while the view is live is
// undefined — this is an aliasing discipline the caller upholds, not a
// runtime-enforced lock.
type Transform[C any] struct {
	mat geom.Mat2 // source coordinate → visible coordinate
	inv geom.Mat2 // visible coordinate → source coordinate
	g   *Grid[C]
}

// NewTransform wraps g in a view transformed by m. The matrix must be
// unimodular (det = ±1, a rotation or reflection); anything else —
// scalings, shears, singular matrices — returns geom.ErrNotUnimodular.
// The exact integer inverse is precomputed once.
func NewTransform[C any](g *Grid[C], m geom.Mat2) (*Transform[C], error) {
	inv, err := m.Inverse()
	if err != nil {
		return nil, err
	}

	return &Transform[C]{mat: m, inv: inv, g: g}, nil
}

// keepPositiveQuadrant applies m to p and shifts the result so the
// transformed grid stays anchored at the origin:
//
//  1. maxCorner = dim − (1,1), the last valid coordinate before transform.
//  2. t = m·maxCorner, which may have negative components.
//  3. offset = (|t| − t)/2 elementwise — exactly the shift that pulls any
//     axis m flipped into negative territory back to non-negative.
//  4. result = offset + m·p.
//
// Parameterized by the forward matrix it maps source → visible;
// by the inverse matrix (and the visible dimension) it maps back.
func keepPositiveQuadrant(dim geom.Point, m geom.Mat2, p geom.Point) geom.Point {
	maxCorner := dim.Sub(geom.Pt(1, 1))
	t := m.Apply(maxCorner)
	shift := t.Abs().Sub(t)
	offset := geom.Pt(shift.X/2, shift.Y/2)

	return offset.Add(m.Apply(p))
}

// TransformPoint maps a source-grid coordinate to its visible coordinate.
func (t *Transform[C]) TransformPoint(p geom.Point) geom.Point {
	return keepPositiveQuadrant(t.g.Dimension(), t.mat, p)
}

// InversePoint maps a visible coordinate back to its source-grid coordinate.
func (t *Transform[C]) InversePoint(p geom.Point) geom.Point {
	return keepPositiveQuadrant(t.Dimension(), t.inv, p)
}

// At returns the cell visible at p. A visible point whose source lands
// out of bounds violates the underlying grid's contract and panics there.
func (t *Transform[C]) At(p geom.Point) C {
	return t.g.At(t.InversePoint(p))
}

// Set stores c at the visible point p. Same contract as At.
func (t *Transform[C]) Set(p geom.Point, c C) {
	t.g.Set(t.InversePoint(p), c)
}

// Get returns the cell visible at p, or false when the inverse-mapped
// point falls outside the underlying grid.
func (t *Transform[C]) Get(p geom.Point) (C, bool) {
	return t.g.Get(t.InversePoint(p))
}

// Contains reports whether the inverse-mapped point is in bounds on the
// underlying grid.
func (t *Transform[C]) Contains(p geom.Point) bool {
	return t.g.Contains(t.InversePoint(p))
}

// Dimension returns |m·sourceDimension| elementwise — a quarter-turn
// view of a 5×9 grid reports 9×5.
func (t *Transform[C]) Dimension() geom.Point {
	return t.mat.Apply(t.g.Dimension()).Abs()
}

// Position delegates the search to the underlying grid (row-major in
// source order) and maps the hit forward into the view's coordinates.
func (t *Transform[C]) Position(pred func(C) bool) (geom.Point, bool) {
	p, ok := t.g.Position(pred)
	if !ok {
		return geom.Point{}, false
	}

	return t.TransformPoint(p), true
}

// Adjacent delegates to the underlying grid at the inverse-mapped point.
// The neighbors come back in the source grid's coordinate system and
// adjacency order, not re-expressed in the rotated frame; this mirrors
// the long-standing behavior derived algorithms already rely on.
func (t *Transform[C]) Adjacent(p geom.Point) []Neighbor[C] {
	return t.g.Adjacent(t.InversePoint(p))
}

// Coordinates returns a restartable row-major sequence over the view's
// own (transformed) dimension.
func (t *Transform[C]) Coordinates() iter.Seq[geom.Point] {
	dim := t.Dimension()

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

// Display renders the view row by row in its own coordinate system,
// rows joined by '\n', no trailing newline.
func (t *Transform[C]) Display(format func(C) string) string {
	dim := t.Dimension()
	var sb strings.Builder
	for y := 0; y < dim.Y; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < dim.X; x++ {
			sb.WriteString(format(t.At(geom.Pt(x, y))))
		}
	}

	return sb.String()
}
