package linesimp

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Point is a single coordinate of a linestring: a fixed-length tuple of D
// scalars. Points have no identity beyond their position.
type Point[T constraints.Float] = []T

// LineString is an ordered sequence of points forming a piecewise-linear
// path. It may be treated as closed (last point connected back to the
// first) by the algorithms that support it.
type LineString[T constraints.Float] = [][]T

// DistanceSquared returns the squared euclidean distance between a and b.
// Assumes points have the same dimension (caller's responsibility).
func DistanceSquared[T constraints.Float](a, b Point[T]) T {
	var sum T
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Distance returns the euclidean distance between a and b.
// Assumes points have the same dimension (caller's responsibility).
func Distance[T constraints.Float](a, b Point[T]) T {
	return T(math.Sqrt(float64(DistanceSquared(a, b))))
}

// SegmentDistanceSquared returns the squared distance from p to the closest
// point on the segment between start and end. The projection of p onto the
// segment is clamped to the endpoints; a zero-length segment degenerates to
// the squared distance from p to start.
func SegmentDistanceSquared[T constraints.Float](start, end, p Point[T]) T {
	lengthSq := DistanceSquared(start, end)
	if lengthSq == 0 {
		return DistanceSquared(p, start)
	}

	// dot(p-start, end-start): where p projects along the segment, scaled
	// by the segment length.
	var along T
	for i := range p {
		along += (p[i] - start[i]) * (end[i] - start[i])
	}
	switch {
	case along <= 0:
		return DistanceSquared(p, start)
	case along >= lengthSq:
		return DistanceSquared(p, end)
	}

	t := along / lengthSq
	var sum T
	for i := range p {
		d := p[i] - (start[i] + t*(end[i]-start[i]))
		sum += d * d
	}
	return sum
}

// Reflect returns p mirrored across around.
func Reflect[T constraints.Float](p, around Point[T]) Point[T] {
	out := make(Point[T], len(p))
	for i := range p {
		out[i] = 2*around[i] - p[i]
	}
	return out
}
