package bucketq

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue construction and key updates.
var (
	// ErrInvalidBound indicates a non-positive priority bound.
	ErrInvalidBound = errors.New("bucketq: priority bound must be positive")
	// ErrPriorityRange indicates a priority outside [0, bound).
	ErrPriorityRange = errors.New("bucketq: priority out of range")
)

// Item pairs a queued value with the priority it held when popped.
type Item[T comparable] struct {
	Value    T
	Priority int
}

// Queue is a min-priority bucket queue over priorities 0..bound-1.
// Each item appears at most once; pushing an existing item moves it.
type Queue[T comparable] struct {
	buckets []map[T]struct{} // one lazily-allocated set per priority
	prio    map[T]int        // current priority per queued item
}

// New returns a queue accepting priorities in [0, bound), pre-loaded
// with init (which may be nil). Returns ErrInvalidBound for bound <= 0
// and ErrPriorityRange if any initial priority falls outside the bound.
// Complexity: O(bound + len(init)).
func New[T comparable](bound int, init map[T]int) (*Queue[T], error) {
	if bound <= 0 {
		return nil, ErrInvalidBound
	}
	q := &Queue[T]{
		buckets: make([]map[T]struct{}, bound),
		prio:    make(map[T]int, len(init)),
	}
	for item, p := range init {
		if err := q.Push(item, p); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// Push inserts item at priority p, moving it if already queued.
// Returns ErrPriorityRange for p outside [0, bound).
// Complexity: O(1).
func (q *Queue[T]) Push(item T, p int) error {
	if p < 0 || p >= len(q.buckets) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrPriorityRange, p, len(q.buckets))
	}
	if cur, ok := q.prio[item]; ok {
		delete(q.buckets[cur], item)
	}
	if q.buckets[p] == nil {
		q.buckets[p] = make(map[T]struct{})
	}
	q.buckets[p][item] = struct{}{}
	q.prio[item] = p

	return nil
}

// ModifyKey moves a queued item to priority to. Unknown items are
// silently ignored — absence is an expected outcome for lazy callers.
// Returns ErrPriorityRange for to outside [0, bound).
// Complexity: O(1).
func (q *Queue[T]) ModifyKey(item T, to int) error {
	if to < 0 || to >= len(q.buckets) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrPriorityRange, to, len(q.buckets))
	}
	cur, ok := q.prio[item]
	if !ok {
		return nil
	}
	delete(q.buckets[cur], item)
	if q.buckets[to] == nil {
		q.buckets[to] = make(map[T]struct{})
	}
	q.buckets[to][item] = struct{}{}
	q.prio[item] = to

	return nil
}

// PopMin removes and returns an item holding the lowest priority, or
// false when the queue is empty. Ties within a bucket are broken
// arbitrarily. Complexity: O(bound) worst case.
func (q *Queue[T]) PopMin() (Item[T], bool) {
	for p, bucket := range q.buckets {
		for item := range bucket {
			delete(bucket, item)
			delete(q.prio, item)

			return Item[T]{Value: item, Priority: p}, true
		}
	}

	return Item[T]{}, false
}

// Len returns the number of queued items. Complexity: O(1).
func (q *Queue[T]) Len() int {
	return len(q.prio)
}
