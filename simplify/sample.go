package simplify

import (
	"errors"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/linesimp"
)

var (
	// ErrInvalidSampleDistance is returned when a sampling distance is not
	// positive.
	ErrInvalidSampleDistance = errors.New("simplify: sample distance must be positive")

	// ErrNegativeOffset is returned when a sampling offset is negative.
	ErrNegativeOffset = errors.New("simplify: offset must be non-negative")

	// ErrZeroLength is returned when resampling a line of zero length: no
	// positive sampling distance can be derived from it.
	ErrZeroLength = errors.New("simplify: linestring has zero length")

	// ErrInvalidPointCount is returned when a resampling target point
	// count is below 2.
	ErrInvalidPointCount = errors.New("simplify: point count must be at least 2")
)

// SampleEvery walks line from its start, emitting a point every
// sampleDistance along the path. offset starts the walk partway into the
// first edge; use 0 to include the first point. Also returns how far the
// walk travelled past the last emitted point.
//
// A line shorter than sampleDistance+offset reduces to at most one point.
// Lines with one point or fewer are returned as-is.
func SampleEvery[T constraints.Float](line linesimp.LineString[T], sampleDistance, offset T) (linesimp.LineString[T], T, error) {
	if sampleDistance <= 0 {
		return nil, 0, ErrInvalidSampleDistance
	}
	if offset < 0 {
		return nil, 0, ErrNegativeOffset
	}

	if len(line) <= 1 {
		out := make(linesimp.LineString[T], len(line))
		copy(out, line)
		return out, 0, nil
	}

	// prev is the walk cursor; it moves along edges as points are emitted
	// and is mutated in place, so it starts as a copy.
	prev := slices.Clone(line[0])
	var out linesimp.LineString[T]
	var remaining T
	if offset == 0 {
		out = append(out, slices.Clone(prev))
		remaining = sampleDistance
	} else {
		remaining = offset
	}

	i := 1
	next := line[i]
	for {
		edge := linesimp.Distance(prev, next)

		switch {
		case remaining < edge:
			// The next sample lands on this edge.
			for k := range prev {
				prev[k] += (next[k] - prev[k]) / edge * remaining
			}
			out = append(out, slices.Clone(prev))
			remaining = sampleDistance
		case remaining == edge:
			// The next sample lands exactly on the edge's far point.
			prev = slices.Clone(next)
			out = append(out, slices.Clone(prev))
			i++
			if i >= len(line) {
				return out, 0, nil
			}
			next = line[i]
			remaining = sampleDistance
		default:
			// The edge ends before the next sample.
			prev = slices.Clone(next)
			remaining -= edge
			i++
			if i >= len(line) {
				return out, sampleDistance - remaining, nil
			}
			next = line[i]
		}
	}
}

// Resample returns line redistributed into nPoints evenly spaced points
// along its length.
func Resample[T constraints.Float](line linesimp.LineString[T], nPoints int) (linesimp.LineString[T], error) {
	if nPoints < 2 {
		return nil, ErrInvalidPointCount
	}
	total := linesimp.TotalLength(line)
	if total == 0 {
		return nil, ErrZeroLength
	}

	out, _, err := SampleEvery(line, total/T(nPoints-1), 0)
	return out, err
}
