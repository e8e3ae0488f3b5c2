// Package simplify reduces the number of points in a linestring while
// preserving its shape.
//
// Three strategies are provided:
//
//   - [RDPKeep] / [RDPReduce]: Ramer-Douglas-Peucker, which drops every
//     point closer than a tolerance to the segment between its surviving
//     neighbours. Choose this to bound the deviation from the original.
//   - [VWKeep] / [VWReduce]: Visvalingam-Whyatt, which repeatedly removes
//     the point spanning the smallest triangle with its neighbours. Choose
//     this to hit an exact target point count. Supports closed lines
//     (polygon boundaries).
//   - [SampleEvery] / [Resample]: arc-length resampling, which walks the
//     line placing evenly spaced points. Choose this to regularize point
//     spacing, e.g. before smoothing with a moving average.
//
// The Keep variants return the surviving indices into the original line;
// the Reduce variants return the reduced line itself.
package simplify
