package simplify

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/linesimp"
	"github.com/hupe1980/linesimp/internal/queue"
)

// ErrInvalidTargetCount is returned when a Visvalingam-Whyatt target point
// count is below 2: a line cannot shrink past its endpoints.
var ErrInvalidTargetCount = errors.New("simplify: target count must be at least 2")

// VWKeep returns the ascending indices of the points that survive
// decimating line down to targetCount points with the Visvalingam-Whyatt
// algorithm. If closed is true the line is treated as a ring with an
// implicit edge from the last point back to the first, making the
// endpoints candidates for removal like any other point; on open lines the
// endpoints are always kept.
//
// Decimation may stop early, keeping more than targetCount points, when no
// valid triangle remains. Lines with two or fewer points keep every index.
func VWKeep[T constraints.Float](line linesimp.LineString[T], targetCount int, closed bool) ([]int, error) {
	if targetCount < 2 {
		return nil, ErrInvalidTargetCount
	}

	dropped := vwDrop(line, targetCount, closed)

	out := make([]int, 0, len(line)-len(dropped))
	for idx := range line {
		if _, ok := dropped[idx]; !ok {
			out = append(out, idx)
		}
	}
	return out, nil
}

// VWReduce decimates line down to targetCount points with the
// Visvalingam-Whyatt algorithm. The returned line shares points with the
// input.
func VWReduce[T constraints.Float](line linesimp.LineString[T], targetCount int, closed bool) (linesimp.LineString[T], error) {
	kept, err := VWKeep(line, targetCount, closed)
	if err != nil {
		return nil, err
	}
	out := make(linesimp.LineString[T], 0, len(kept))
	for _, idx := range kept {
		out = append(out, line[idx])
	}
	return out, nil
}

// corners are the three point indices forming a triangle over the line
// being decimated, in traversal order.
type corners struct {
	left, center, right int
}

func (c corners) valid(dropped map[int]struct{}) bool {
	_, l := dropped[c.left]
	_, m := dropped[c.center]
	_, r := dropped[c.right]
	return !l && !m && !r
}

// triangle pairs corners with the area they span, the priority for the
// removal queue.
func triangle[T constraints.Float](line linesimp.LineString[T], c corners) queue.Item[T, corners] {
	return queue.Item[T, corners]{
		Value:    c,
		Priority: triArea(line[c.left], line[c.center], line[c.right]),
	}
}

// triArea returns the area of the triangle spanned by three points, via
// Heron's formula on its side lengths.
func triArea[T constraints.Float](p1, p2, p3 linesimp.Point[T]) T {
	s1 := linesimp.Distance(p1, p2)
	s2 := linesimp.Distance(p2, p3)
	s3 := linesimp.Distance(p3, p1)

	s := (s1 + s2 + s3) / 2
	areaSq := s * (s - s1) * (s - s2) * (s - s3)
	if areaSq <= 0 {
		// Collinear corners can push the product slightly negative.
		return 0
	}
	return T(math.Sqrt(float64(areaSq)))
}

// vwDrop returns the set of indices Visvalingam-Whyatt removes from line.
//
// Triangles are held in a min-heap by area and checked for staleness at
// pop time: removing a point invalidates the triangles of its neighbours,
// and rather than updating those eagerly, a popped triangle with a dropped
// corner is relinked to the nearest live neighbours and pushed back.
func vwDrop[T constraints.Float](line linesimp.LineString[T], targetCount int, closed bool) map[int]struct{} {
	dropped := make(map[int]struct{})
	if len(line) <= 2 {
		return dropped
	}

	pq := queue.NewMin[T, corners](len(line))
	for idx := 0; idx+2 < len(line); idx++ {
		pq.Push(triangle(line, corners{idx, idx + 1, idx + 2}))
	}
	if closed {
		n := len(line)
		pq.Push(triangle(line, corners{n - 2, n - 1, 0}))
		pq.Push(triangle(line, corners{n - 1, 0, 1}))
	}

	for len(line)-len(dropped) > targetCount {
		item, ok := pq.Pop()
		if !ok {
			break
		}

		tri := item.Value
		if tri.valid(dropped) {
			dropped[tri.center] = struct{}{}
			continue
		}

		left, right, ok := liveNeighbors(tri.left, tri.right, dropped, len(line), closed)
		if !ok {
			linesimp.DefaultLogger().Debug("visvalingam: no live replacement neighbours, stopping early",
				"kept", len(line)-len(dropped),
				"target", targetCount,
			)
			break
		}
		pq.Push(triangle(line, corners{left, tri.center, right}))
	}

	return dropped
}

// liveNeighbors scans outward from left and right for the nearest indices
// not in dropped. Closed lines wrap the scan around the ends; open lines
// fail it at the boundary. The scan also refuses to run once dropped
// covers all but a minimal residual of the line, where a wrapping search
// could cycle without ever finding two live neighbours.
func liveNeighbors(left, right int, dropped map[int]struct{}, n int, closed bool) (int, int, bool) {
	if len(dropped) >= n-3 {
		return 0, 0, false
	}

	for {
		if _, ok := dropped[left]; !ok {
			break
		}
		switch {
		case left > 0:
			left--
		case closed:
			left = n - 1
		default:
			return 0, 0, false
		}
	}
	for {
		if _, ok := dropped[right]; !ok {
			break
		}
		switch {
		case right < n-1:
			right++
		case closed:
			right = 0
		default:
			return 0, 0, false
		}
	}

	return left, right, true
}
