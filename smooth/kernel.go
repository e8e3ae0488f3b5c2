package smooth

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Compile time checks to ensure the kernels satisfy the Kernel interface.
var (
	_ Kernel[float64] = Linear[float64]{}
	_ Kernel[float64] = Gaussian[float64]{}
)

// Kernel converts the distance between two points of a linestring into the
// weight the farther point carries in a locally weighted average.
//
// Implementations report ok=false once a point is too far away to matter.
// Weights do not need to sum to 1; they are normalized by the mean.
type Kernel[T constraints.Float] interface {
	// Weigh returns the weight of a point dist away from the point of
	// interest.
	Weigh(dist T) (weight T, ok bool)

	// WeighSquared is Weigh for an already-squared distance, saving a
	// square root when the caller has one at hand.
	WeighSquared(distSq T) (weight T, ok bool)

	// CenterWeight returns the weight of the point of interest itself.
	CenterWeight() T
}

// Linear weighs points by how far they are from the point of interest in a
// linear fashion, cutting off at maxDistance.
type Linear[T constraints.Float] struct {
	maxDistance T
}

// NewLinear creates a linear kernel with the given cutoff distance.
func NewLinear[T constraints.Float](maxDistance T) Linear[T] {
	return Linear[T]{maxDistance: maxDistance}
}

func (k Linear[T]) Weigh(dist T) (T, bool) {
	if dist > k.maxDistance {
		return 0, false
	}
	return k.maxDistance - dist, true
}

func (k Linear[T]) WeighSquared(distSq T) (T, bool) {
	return k.Weigh(T(math.Sqrt(float64(distSq))))
}

func (k Linear[T]) CenterWeight() T {
	return k.maxDistance
}

// Gaussian weighs points by a gaussian of their distance from the point of
// interest, cutting off once the weight falls below the value at width
// standard deviations.
type Gaussian[T constraints.Float] struct {
	doubleVariance T
	cutoff         T
	center         T
}

// NewGaussian creates a gaussian kernel with the given standard deviation,
// cut off at width standard deviations. The constant peak term is skipped;
// it normalizes out in the weighted mean.
func NewGaussian[T constraints.Float](stdev, width T) Gaussian[T] {
	variance := stdev * stdev
	return Gaussian[T]{
		doubleVariance: 2 * variance,
		cutoff:         gaussianWeight(variance, stdev*width),
		center:         gaussianWeight(variance, 0),
	}
}

func (k Gaussian[T]) Weigh(dist T) (T, bool) {
	return k.WeighSquared(dist * dist)
}

func (k Gaussian[T]) WeighSquared(distSq T) (T, bool) {
	w := T(math.Exp(float64(-distSq / k.doubleVariance)))
	if w < k.cutoff {
		return 0, false
	}
	return w, true
}

func (k Gaussian[T]) CenterWeight() T {
	return k.center
}

func gaussianWeight[T constraints.Float](variance, dist T) T {
	return T(math.Exp(float64(-(dist * dist) / (2 * variance))))
}
