// Package smooth denoises a linestring without changing its number of
// points: every point is replaced by a locally weighted average of its
// neighbourhood.
//
// [Convolve] applies an arbitrary [Kernel] ([Linear] and [Gaussian] are
// provided) and pads the ends of the line with reflected points so the
// smoothed line is not pulled inwards. [MovingAverage] is the simpler
// sibling: a fixed, unweighted window that shrinks symmetrically near the
// ends; it works best on lines with evenly spaced points (see
// simplify.Resample).
package smooth
