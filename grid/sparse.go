package grid

import (
	"iter"

	"github.com/katalvlaran/gridkit/geom"
)

// Sparse maps points to cells with a default fallback for absent keys.
// It has no intrinsic bounds: any point is readable, and only written
// points occupy memory. Cells are held behind pointers so Entry can
// hand out a stable mutable handle.
type Sparse[C any] struct {
	cells map[geom.Point]*C
	def   C
}

// NewSparse returns an empty sparse grid whose absent keys read as def.
func NewSparse[C any](def C) *Sparse[C] {
	return &Sparse[C]{
		cells: make(map[geom.Point]*C),
		def:   def,
	}
}

// At returns the stored cell at p, or the default when absent.
// It never mutates the mapping — this is the pure probe; a caller who
// needs a mutable handle (and accepts the materialization side effect)
// uses Entry. Complexity: O(1).
func (s *Sparse[C]) At(p geom.Point) C {
	if c, ok := s.cells[p]; ok {
		return *c
	}

	return s.def
}

// Get returns the cell at p and true. Every point of a defaulted
// mapping is addressable, so the second result is always true; it
// exists to satisfy View.
func (s *Sparse[C]) Get(p geom.Point) (C, bool) {
	return s.At(p), true
}

// Set stores c at p, materializing the key if absent. Complexity: O(1).
func (s *Sparse[C]) Set(p geom.Point, c C) {
	s.cells[p] = &c
}

// Entry returns a mutable handle to the cell at p, inserting a copy of
// the default first when the key is absent. The insertion is observable:
// after Entry(p), Contains(p) is true and p counts toward Dimension.
// Complexity: O(1).
func (s *Sparse[C]) Entry(p geom.Point) *C {
	if c, ok := s.cells[p]; ok {
		return c
	}
	c := s.def
	s.cells[p] = &c

	return &c
}

// Contains reports whether p has been materialized (written via Set or
// Entry). Reading through At never materializes.
func (s *Sparse[C]) Contains(p geom.Point) bool {
	_, ok := s.cells[p]

	return ok
}

// Len returns the number of materialized cells.
func (s *Sparse[C]) Len() int {
	return len(s.cells)
}

// Dimension returns the elementwise bounding-box span of all
// materialized keys plus (1,1) in each axis.
// Querying the dimension of an empty mapping is a contract violation
// and panics with ErrNoCells. Complexity: O(n) keys.
func (s *Sparse[C]) Dimension() geom.Point {
	mn, mx, err := geom.BoundingBox(s.Coordinates())
	if err != nil {
		panic(ErrNoCells.Error())
	}

	return mx.Sub(mn).Add(geom.Pt(1, 1))
}

// Position returns some materialized point whose cell satisfies pred.
// Iteration order over a mapping is unspecified, so ties between
// matching cells are broken arbitrarily.
func (s *Sparse[C]) Position(pred func(C) bool) (geom.Point, bool) {
	for p, c := range s.cells {
		if pred(*c) {
			return p, true
		}
	}

	return geom.Point{}, false
}

// Adjacent returns all four orthogonal neighbors of p in the fixed
// order up, right, down, left — unfiltered, since a sparse grid has no
// bounds beyond its populated keys. Absent neighbors read as the
// default and are not materialized.
func (s *Sparse[C]) Adjacent(p geom.Point) []Neighbor[C] {
	out := make([]Neighbor[C], 0, len(AdjacentOffsets))
	for _, d := range AdjacentOffsets {
		n := p.Add(d)
		out = append(out, Neighbor[C]{Point: n, Cell: s.At(n)})
	}

	return out
}

// Coordinates returns the materialized keys in unspecified order.
func (s *Sparse[C]) Coordinates() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for p := range s.cells {
			if !yield(p) {
				return
			}
		}
	}
}

// ToDense bakes the sparse grid into a dense Grid spanning its bounding
// box: a default-filled grid of Dimension() size where every
// materialized key lands at key − min. Returns ErrNoCells for an empty
// mapping. Complexity: O(W×H + n).
func (s *Sparse[C]) ToDense() (*Grid[C], error) {
	mn, mx, err := geom.BoundingBox(s.Coordinates())
	if err != nil {
		return nil, ErrNoCells
	}
	dim := mx.Sub(mn).Add(geom.Pt(1, 1))
	g, err := NewUniform(dim, s.def)
	if err != nil {
		return nil, err
	}
	for p, c := range s.cells {
		g.Set(p.Sub(mn), *c)
	}

	return g, nil
}

// Display bakes the grid densely and renders it; an empty mapping
// renders as the empty string.
func (s *Sparse[C]) Display(format func(C) string) string {
	if len(s.cells) == 0 {
		return ""
	}
	g, err := s.ToDense()
	if err != nil {
		return ""
	}

	return g.Display(format)
}
