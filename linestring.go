package linesimp

import "golang.org/x/exp/constraints"

// TotalLength returns the sum of the lengths of a line's segments.
// Lines with fewer than two points have zero length.
func TotalLength[T constraints.Float](line LineString[T]) T {
	var total T
	for i := 1; i < len(line); i++ {
		total += Distance(line[i-1], line[i])
	}
	return total
}
