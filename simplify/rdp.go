package simplify

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/linesimp"
)

// ErrNegativeEpsilon is returned when an RDP tolerance is negative.
var ErrNegativeEpsilon = errors.New("simplify: epsilon must be non-negative")

// RDPKeep returns the ascending indices of the points that survive
// simplifying line with the Ramer-Douglas-Peucker algorithm at tolerance
// epsilon.
//
// The first and last index are always kept. Lines with two or fewer points
// are already minimal and keep every index.
func RDPKeep[T constraints.Float](line linesimp.LineString[T], epsilon T) ([]int, error) {
	if epsilon < 0 {
		return nil, ErrNegativeEpsilon
	}

	switch len(line) {
	case 0:
		return []int{}, nil
	case 1:
		return []int{0}, nil
	}

	out := make([]int, 0, len(line))
	out = append(out, 0)
	out = rdpKeepInner(line, epsilon*epsilon, 0, out)
	out = append(out, len(line)-1)

	return out, nil
}

// RDPReduce decimates line with the Ramer-Douglas-Peucker algorithm at
// tolerance epsilon. The returned line shares points with the input.
func RDPReduce[T constraints.Float](line linesimp.LineString[T], epsilon T) (linesimp.LineString[T], error) {
	kept, err := RDPKeep(line, epsilon)
	if err != nil {
		return nil, err
	}
	out := make(linesimp.LineString[T], 0, len(kept))
	for _, idx := range kept {
		out = append(out, line[idx])
	}
	return out, nil
}

// rdpKeepInner appends to out the kept interior indices of line, a
// sub-range of the original starting at global index offset. The first and
// last points of the sub-range bound it and are never appended here.
func rdpKeepInner[T constraints.Float](line linesimp.LineString[T], epsilonSq T, offset int, out []int) []int {
	if len(line) <= 2 {
		return out
	}

	first := line[0]
	last := line[len(line)-1]

	// Ties are broken by the first index scanned, for determinism.
	greatest := 0
	greatestDistSq := T(math.Inf(-1))
	for idx := 1; idx < len(line)-1; idx++ {
		distSq := linesimp.SegmentDistanceSquared(first, last, line[idx])
		if distSq > greatestDistSq {
			greatest, greatestDistSq = idx, distSq
		}
	}

	if greatestDistSq <= epsilonSq {
		// Every interior point of this sub-range is within tolerance of
		// the bounding segment.
		return out
	}

	out = rdpKeepInner(line[:greatest+1], epsilonSq, offset, out)
	out = append(out, offset+greatest)
	out = rdpKeepInner(line[greatest:], epsilonSq, offset+greatest, out)

	return out
}
