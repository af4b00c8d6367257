package geom

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNoPoints indicates that a bounding box was requested over an empty
// point stream; the elementwise min/max reduction is undefined there.
var ErrNoPoints = errors.New("geom: bounding box of an empty point set")

// Point is a position (or displacement) on the integer plane.
// Grids address cells by Point with X growing rightward and Y growing
// downward, so "up" decreases Y.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q componentwise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q componentwise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both components multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Abs returns p with both components replaced by their absolute values.
func (p Point) Abs() Point {
	return Point{X: abs(p.X), Y: abs(p.Y)}
}

// ManhattanDist returns the L1 distance |p.X-q.X| + |p.Y-q.Y|.
func (p Point) ManhattanDist(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// ChebyshevDist returns the L∞ distance max(|p.X-q.X|, |p.Y-q.Y|).
func (p Point) ChebyshevDist(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Min returns the componentwise minimum of p and q.
// Note that this is elementwise, not lexicographic: Min((0,5),(3,1)) is (0,1).
func Min(p, q Point) Point {
	return Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// Max returns the componentwise maximum of p and q.
func Max(p, q Point) Point {
	return Point{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// BoundingBox reduces a point stream to its elementwise minimum and
// maximum — the two corners of the smallest axis-aligned rectangle
// containing every point. Returns ErrNoPoints if the stream is empty.
// Complexity: O(n) over the stream, O(1) memory.
func BoundingBox(points iter.Seq[Point]) (mn, mx Point, err error) {
	first := true
	for p := range points {
		if first {
			mn, mx = p, p
			first = false
			continue
		}
		mn = Min(mn, p)
		mx = Max(mx, p)
	}
	if first {
		return Point{}, Point{}, ErrNoPoints
	}

	return mn, mx, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
