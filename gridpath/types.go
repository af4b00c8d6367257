package gridpath

import (
	"errors"

	"github.com/katalvlaran/gridkit/geom"
)

// Sentinel errors returned by the traversal entry points.
var (
	// ErrNilView indicates a nil view was passed.
	ErrNilView = errors.New("gridpath: view is nil")
	// ErrStartOutside indicates the start point is not contained in the view.
	ErrStartOutside = errors.New("gridpath: start point not contained in view")
	// ErrStartBlocked indicates the start cell fails the passability predicate.
	ErrStartBlocked = errors.New("gridpath: start cell is not passable")
	// ErrNegativeCost indicates a negative cell cost during Dial's algorithm.
	ErrNegativeCost = errors.New("gridpath: cell cost must be non-negative")
	// ErrBadMaxDistance indicates a non-positive MaxDistance cap.
	ErrBadMaxDistance = errors.New("gridpath: MaxDistance must be positive")
)

// DefaultMaxDistance caps Dial's bucket range when no option overrides it.
const DefaultMaxDistance = 1 << 16

// Options configures Dial's algorithm.
//
// MaxDistance – inclusive cap on explored distances; cells whose best
// distance would exceed it stay out of the result entirely. It also
// sizes the bucket queue, so keep it proportional to the distances the
// grid can actually produce.
type Options struct {
	MaxDistance int
}

// Option is a functional option for configuring Dial.
type Option func(*Options)

// WithMaxDistance overrides the distance cap.
// Must be positive; non-positive values panic with ErrBadMaxDistance,
// signaling invalid configuration at the call site.
func WithMaxDistance(maxDist int) Option {
	if maxDist <= 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = maxDist
	}
}

// DefaultOptions returns the Options Dial starts from before applying
// functional overrides.
func DefaultOptions() Options {
	return Options{MaxDistance: DefaultMaxDistance}
}

// Result holds the outcome of a traversal: the distance to every
// reached point and the predecessor tree for path reconstruction.
type Result struct {
	// Start is the traversal origin; Dist[Start] == 0.
	Start geom.Point
	// Dist maps every reached point to its best distance.
	Dist map[geom.Point]int
	// Prev maps every reached point (except Start) to its predecessor.
	Prev map[geom.Point]geom.Point
}

// newResult seeds a Result with the start at distance zero.
func newResult(start geom.Point) *Result {
	return &Result{
		Start: start,
		Dist:  map[geom.Point]int{start: 0},
		Prev:  make(map[geom.Point]geom.Point),
	}
}

// Reached reports whether the traversal reached p.
func (r *Result) Reached(p geom.Point) bool {
	_, ok := r.Dist[p]

	return ok
}

// PathTo reconstructs the path from the start to p, both inclusive, by
// walking the predecessor tree backwards. Returns false when p was
// never reached. Complexity: O(path length).
func (r *Result) PathTo(p geom.Point) ([]geom.Point, bool) {
	if !r.Reached(p) {
		return nil, false
	}
	path := []geom.Point{p}
	for p != r.Start {
		p = r.Prev[p]
		path = append(path, p)
	}
	// Reverse in place: the walk collected the path end-first.
	for l, rr := 0, len(path)-1; l < rr; l, rr = l+1, rr-1 {
		path[l], path[rr] = path[rr], path[l]
	}

	return path, true
}
