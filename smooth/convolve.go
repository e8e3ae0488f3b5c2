package smooth

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/linesimp"
)

// Convolve smooths line by replacing every point with the weighted mean of
// its neighbourhood under kernel, the point itself included at the
// kernel's center weight. The output always has the same length as the
// input; lines with fewer than two points are returned as a copy.
//
// Cutting the kernel off at the ends of the line would bias the mean
// inwards and drag the endpoints along. Each end is therefore padded with
// virtual points, the mirror images of the first (respectively last) few
// points reflected across the endpoint, computed once per call and reaching
// as far as the kernel can see from that endpoint. A perfectly straight,
// evenly spaced line is a fixed point of Convolve.
func Convolve[T constraints.Float](line linesimp.LineString[T], kernel Kernel[T]) linesimp.LineString[T] {
	if len(line) < 2 {
		out := make(linesimp.LineString[T], len(line))
		copy(out, line)
		return out
	}

	wc := newWeightCache(line, kernel)
	wc.pad()

	out := make(linesimp.LineString[T], 0, len(line))
	var neighbourhood []pointWeight[T]

	for currentIdx, currentPoint := range line {
		neighbourhood = append(neighbourhood[:0], pointWeight[T]{
			point:  currentPoint,
			weight: kernel.CenterWeight(),
		})

		// Walk forward from the current point, continuing into the
		// virtual padding past the end of the line, until the kernel cuts
		// off or the padding runs out.
		for idxDiff := 1; ; idxDiff++ {
			nextIdx := currentIdx + idxDiff
			w, ok := wc.weight(currentIdx, nextIdx)
			if !ok {
				break
			}
			p, _ := wc.pointAt(nextIdx)
			neighbourhood = append(neighbourhood, pointWeight[T]{point: p, weight: w})
		}

		// Walk backward, symmetrically, into the padding before the start.
		for idxDiff := 1; ; idxDiff++ {
			nextIdx := currentIdx - idxDiff
			w, ok := wc.weight(nextIdx, currentIdx)
			if !ok {
				break
			}
			p, _ := wc.pointAt(nextIdx)
			neighbourhood = append(neighbourhood, pointWeight[T]{point: p, weight: w})
		}

		out = append(out, weightedMean(neighbourhood))
	}

	return out
}

// pointWeight pairs a neighbourhood point with its kernel weight.
type pointWeight[T constraints.Float] struct {
	point  linesimp.Point[T]
	weight T
}

// weightedMean returns sum(point*weight) / sum(weight). pointWeights must
// not be empty.
func weightedMean[T constraints.Float](pointWeights []pointWeight[T]) linesimp.Point[T] {
	sum := make(linesimp.Point[T], len(pointWeights[0].point))
	var totalWeight T
	for _, pw := range pointWeights {
		for k := range sum {
			sum[k] += pw.point[k] * pw.weight
		}
		totalWeight += pw.weight
	}
	for k := range sum {
		sum[k] /= totalWeight
	}
	return sum
}

// weightCache memoizes kernel weights keyed by an unordered pair of point
// indices, real or virtual. It is scoped to a single Convolve call and
// never shared.
//
// Indices address an extended line: negative indices the virtual padding
// before the start, indices past the end the virtual padding after the
// end.
type weightCache[T constraints.Float] struct {
	line        linesimp.LineString[T]
	kernel      Kernel[T]
	beforeStart linesimp.LineString[T] // beforeStart[v] sits v+1 steps before the first point
	afterEnd    linesimp.LineString[T] // afterEnd[v] sits v+1 steps past the last point
	cache       map[[2]int]cachedWeight[T]
}

type cachedWeight[T constraints.Float] struct {
	weight T
	ok     bool
}

func newWeightCache[T constraints.Float](line linesimp.LineString[T], kernel Kernel[T]) *weightCache[T] {
	return &weightCache[T]{
		line:   line,
		kernel: kernel,
		cache:  make(map[[2]int]cachedWeight[T]),
	}
}

// pad precomputes the virtual padding at both ends: point idx steps past
// an endpoint is the mirror image of the point idx steps before it,
// continuing while the kernel still weighs that point from the endpoint.
func (wc *weightCache[T]) pad() {
	first := wc.line[0]
	lastIdx := len(wc.line) - 1
	last := wc.line[lastIdx]

	for idx := 1; idx <= lastIdx; idx++ {
		if _, ok := wc.weight(0, idx); !ok {
			break
		}
		wc.beforeStart = append(wc.beforeStart, linesimp.Reflect(wc.line[idx], first))
	}
	for idx := 1; idx <= lastIdx; idx++ {
		if _, ok := wc.weight(lastIdx-idx, lastIdx); !ok {
			break
		}
		wc.afterEnd = append(wc.afterEnd, linesimp.Reflect(wc.line[lastIdx-idx], last))
	}
}

// pointAt resolves an extended index. ok is false beyond the line and its
// padding.
func (wc *weightCache[T]) pointAt(idx int) (linesimp.Point[T], bool) {
	switch {
	case idx < 0:
		v := -idx - 1
		if v >= len(wc.beforeStart) {
			return nil, false
		}
		return wc.beforeStart[v], true
	case idx >= len(wc.line):
		v := idx - len(wc.line)
		if v >= len(wc.afterEnd) {
			return nil, false
		}
		return wc.afterEnd[v], true
	default:
		return wc.line[idx], true
	}
}

// weight returns the kernel weight of the edge between two extended
// indices. The pair is normalized to (min, max) before the cache lookup,
// so the cache is symmetric; equal indices short-circuit to the kernel's
// center weight without a lookup. ok is false when either index resolves
// to nothing or the kernel cuts off.
func (wc *weightCache[T]) weight(idx1, idx2 int) (T, bool) {
	if idx1 == idx2 {
		return wc.kernel.CenterWeight(), true
	}
	if idx1 > idx2 {
		idx1, idx2 = idx2, idx1
	}

	p1, ok := wc.pointAt(idx1)
	if !ok {
		return 0, false
	}
	p2, ok := wc.pointAt(idx2)
	if !ok {
		return 0, false
	}

	key := [2]int{idx1, idx2}
	if w, ok := wc.cache[key]; ok {
		return w.weight, w.ok
	}
	weight, ok := wc.kernel.WeighSquared(linesimp.DistanceSquared(p1, p2))
	wc.cache[key] = cachedWeight[T]{weight: weight, ok: ok}
	return weight, ok
}
