package geom

import (
	"errors"
	"fmt"
)

// ErrNotUnimodular indicates a matrix whose determinant is not +1 or -1.
// Only unimodular matrices (rotations and reflections of the integer
// lattice) have an exact integer inverse, so only those are accepted
// wherever an inverse is required.
var ErrNotUnimodular = errors.New("geom: matrix determinant must be +1 or -1")

// Mat2 is a 2×2 integer matrix in row-major order:
//
//	| A B |
//	| C D |
//
// It is a plain value type; arithmetic never mutates the receiver.
type Mat2 struct {
	A, B int
	C, D int
}

// Identity returns the 2×2 identity matrix.
func Identity() Mat2 {
	return Mat2{A: 1, B: 0, C: 0, D: 1}
}

// Mul returns the matrix product m·n.
// Complexity: O(1).
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Apply transforms the point p by m, treating p as a column vector:
// m·p = (A·x + B·y, C·x + D·y).
func (m Mat2) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.C*p.X + m.D*p.Y,
	}
}

// Scale returns m with every entry multiplied by k.
func (m Mat2) Scale(k int) Mat2 {
	return Mat2{A: m.A * k, B: m.B * k, C: m.C * k, D: m.D * k}
}

// Det returns the determinant A·D - B·C.
func (m Mat2) Det() int {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the exact integer inverse of m via the adjugate
// formula, valid only for unimodular matrices:
//
//	m⁻¹ = det(m) · | D -B |
//	               | -C A |
//
// since for det = ±1 division by the determinant is multiplication by it.
// Returns ErrNotUnimodular for any other determinant.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if det != 1 && det != -1 {
		return Mat2{}, ErrNotUnimodular
	}
	adj := Mat2{A: m.D, B: -m.B, C: -m.C, D: m.A}

	return adj.Scale(det), nil
}

// String renders m as "[[A B] [C D]]".
func (m Mat2) String() string {
	return fmt.Sprintf("[[%d %d] [%d %d]]", m.A, m.B, m.C, m.D)
}

// rotQuarter is one counter-clockwise quarter-turn of screen coordinates
// (Y grows downward, so on screen the content appears rotated clockwise).
var rotQuarter = Mat2{A: 0, B: -1, C: 1, D: 0}

// Rot returns the transform matrix for count quarter-turns, built by
// left-composing the base quarter-turn count times:
//
//	Rot(0) = Identity
//	Rot(1) = [[0 -1] [1 0]]
//	Rot(4) = Identity
//
// The composition order matters for interoperability with hand-computed
// transforms; Rot(n+1) == rotQuarter · Rot(n) exactly.
func Rot(count int) Mat2 {
	m := Identity()
	for i := 0; i < count; i++ {
		m = rotQuarter.Mul(m)
	}

	return m
}
