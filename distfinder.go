package linesimp

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/linesimp/internal/cache"
)

// DistanceFinder finds the arc length of the stretch between any two
// points of a linestring, optionally memoizing pairwise distances in an
// LRU cache.
//
// A DistanceFinder is not safe for concurrent use.
type DistanceFinder[T constraints.Float] struct {
	points   LineString[T]
	closed   bool
	cache    *cache.LRU[[2]int, T]
	total    T
	hasTotal bool
}

// NewDistanceFinder creates a DistanceFinder over points. If closed is
// true the line is treated as a ring with an implicit edge from the last
// point back to the first. cacheSize bounds the pairwise-distance cache;
// zero or negative disables caching.
func NewDistanceFinder[T constraints.Float](points LineString[T], closed bool, cacheSize int) *DistanceFinder[T] {
	f := &DistanceFinder[T]{
		points: points,
		closed: closed,
	}
	if cacheSize > 0 {
		f.cache = cache.NewLRU[[2]int, T](cacheSize)
	}
	return f
}

// TotalLength returns the length of the whole line, including the closing
// edge for closed lines. The result is memoized.
func (f *DistanceFinder[T]) TotalLength() T {
	if f.hasTotal {
		return f.total
	}
	if len(f.points) < 2 {
		return 0
	}

	var total T
	for i := 0; i < len(f.points)-1; i++ {
		total += f.segment(i, i+1)
	}
	if f.closed {
		total += f.segment(len(f.points)-1, 0)
	}
	f.total, f.hasTotal = total, true

	return total
}

// Length returns the arc length walking forward from the point at index
// start to the point at index end. ok is false if either index is out of
// range, or if end comes before start on an open line. On closed lines a
// walk past the end wraps through the closing edge.
func (f *DistanceFinder[T]) Length(start, end int) (T, bool) {
	if start < 0 || end < 0 || start >= len(f.points) || end >= len(f.points) {
		return 0, false
	}

	switch {
	case start < end:
		var total T
		for i := start; i < end; i++ {
			total += f.segment(i, i+1)
		}
		return total, true
	case start == end:
		return 0, true
	default:
		if !f.closed {
			return 0, false
		}
		var total T
		for i := start; i < len(f.points)-1; i++ {
			total += f.segment(i, i+1)
		}
		total += f.segment(len(f.points)-1, 0)
		for i := 0; i < end; i++ {
			total += f.segment(i, i+1)
		}
		return total, true
	}
}

// segment returns the length of the single edge between two indices.
// For closed linestrings the closing edge is (last, 0).
func (f *DistanceFinder[T]) segment(start, end int) T {
	if f.cache == nil {
		return Distance(f.points[start], f.points[end])
	}
	key := [2]int{start, end}
	if d, ok := f.cache.Get(key); ok {
		return d
	}
	d := Distance(f.points[start], f.points[end])
	f.cache.Set(key, d)
	return d
}
