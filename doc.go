// Package linesimp reduces and smooths linestrings of points in any fixed
// dimension D, generic over float32 and float64 coordinates.
//
// A linestring is an ordered sequence of points forming a piecewise-linear
// path: a GPS trajectory, a map boundary, a sensor trace. Linesimp either
// compresses such a line (fewer points, controlled deviation from the
// original shape) or denoises it (same number of points, adjusted
// positions).
//
// # Packages
//
// The root package holds the geometric primitives every algorithm is built
// on: euclidean distances, clamped segment projection, arc lengths and the
// [DistanceFinder] utility for cached pairwise lengths.
//
// Package simplify changes the number of points:
//
//	kept, _ := simplify.RDPReduce(line, 0.5)       // Ramer-Douglas-Peucker
//	kept, _ := simplify.VWReduce(line, 100, false) // Visvalingam-Whyatt
//	even, _ := simplify.Resample(line, 100)        // arc-length resampling
//
// Package smooth keeps the number of points and moves them:
//
//	out := smooth.Convolve(line, smooth.NewGaussian(1.0, 3.0))
//	out := smooth.MovingAverage(line, 2)
//
// # Dimensions
//
// A point is a []T of coordinates. The dimension is fixed per call and must
// be identical for every point of a line; like the distance helpers, this
// is the caller's responsibility and is not checked.
//
// # Concurrency
//
// Every algorithm is a pure function of its inputs. Auxiliary state (heaps,
// caches, reflection buffers) is created per call and discarded on return,
// so concurrent callers may run any algorithm on different lines without
// coordination. A single call is not internally parallel.
package linesimp
