// Package joint computes finger-joint edge profiles with kerf and clearance
// compensation.
//
// # Profiles
//
// A [Profile] is an open polyline in edge-local coordinates: x runs along the
// edge from 0 to its length and y is the depth measured inward from the
// panel's outer boundary. Every vertex sits at depth 0 (outer level) or depth
// t (the material thickness, inset level).
//
// The edge is split into n equal segments. Segments at the outer level are
// material fingers; segments at the inset level are gaps that receive the
// mating panel's fingers. A [Male] edge starts with a tab (segment 0 at the
// outer level); a [Female] edge is its exact complement and starts with a
// notch.
//
// # Segment count and parity
//
// n is always odd, so an edge starts and ends on the same kind of segment and
// reads the same from either end. That is what lets two panels that meet at
// a corner agree on which one owns the corner square, and lets a male and a
// female edge of the same length interlock whatever direction each panel
// traverses it in:
//
//   - width mode: n = floor(length / fingerWidth), bumped to the next odd
//     number when even; fingerWidth must be below length/2
//   - count mode: n = 2*count + 1
//
// The derived finger count is (n-1)/2 and must be at least 1.
//
// # Tolerance
//
// [Delta] folds kerf, clearance and thickness into one signed offset. Every
// internal transition moves by delta so that the material finger on its
// outer side grows: male tabs get wider and female notches get narrower by
// 2*delta. At delta 0 the male and female profiles of equal length and finger
// spec coincide exactly once the female one is mirrored across the joint line
// (y -> t-y).
package joint
