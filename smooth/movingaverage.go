package smooth

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/linesimp"
)

// MovingAverage smooths line with an unweighted average of the 2*width+1
// points centred on each point; near the ends the window shrinks
// symmetrically, so the endpoints stay where they are. The output always
// has the same length as the input.
//
// Lines with no more than max(2, width) points are returned unchanged (as
// a copy), as is any line when width is 0.
//
// Works best on lines with evenly spaced points; resample first (see
// simplify.Resample) when the spacing is irregular.
func MovingAverage[T constraints.Float](line linesimp.LineString[T], width int) linesimp.LineString[T] {
	if width < 1 || len(line) <= max(2, width) {
		out := make(linesimp.LineString[T], len(line))
		copy(out, line)
		return out
	}

	out := make(linesimp.LineString[T], 0, len(line))
	for i := range line {
		half := min(width, i, len(line)-1-i)
		out = append(out, mean(line[i-half:i+half+1]))
	}
	return out
}

// mean returns the arithmetic mean of points. points must not be empty.
func mean[T constraints.Float](points linesimp.LineString[T]) linesimp.Point[T] {
	out := make(linesimp.Point[T], len(points[0]))
	for _, p := range points {
		for k := range out {
			out[k] += p[k]
		}
	}
	n := T(len(points))
	for k := range out {
		out[k] /= n
	}
	return out
}
