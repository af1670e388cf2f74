// Package layout computes new UV positions for ordered point lists and
// grids of loop pairs.
//
// The functions here are pure: they take UV coordinates, return new ones,
// and never touch a mesh. Callers are expected to validate topology first
// (ordering, connectivity, minimum counts) and to write the results back
// only when every computation succeeded.
//
// # Algorithms
//
//   - [FitCircle] and [DistributeOnCircle]: circle through three points and
//     N points evenly spaced on it.
//   - [Smooth]: equal arc-length spacing along the original polyline.
//   - [Straighten]: equal spacing on the segment from first to last point.
//   - [AlignAxis]: collapse onto one side of the bounding box along its
//     longer axis.
//   - [StraightenGrid]: parallelogram layout of a grid of loop pairs.
package layout
