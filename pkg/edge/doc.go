// Package edge provides the named edge styles a box panel side can be cut
// with.
//
// Every style implements [Style]: given the side's length, the box's finger
// spec, the side's [joint.Role] and the shared [Geometry], it returns a
// [Fragment] holding the side's outline profile and any cutouts that belong
// to it, both in edge-local coordinates (x along the side, y depth inward).
//
// # Built-in Styles
//
//   - finger: the straight finger joint, the default for jointed sides
//   - flex: finger joint plus a band of live-hinge slits spaced 2t apart
//   - dovetail: flared tabs with matching undercut notches
//   - screw: finger joint plus a screw hole through the centre finger
//   - plain: a straight side with no joint
//
// Jointed styles are complementary: the male and female fragments of equal
// length and spec interlock exactly at zero delta.
//
// # Registry
//
// A [Registry] maps names to styles. [Builtin] returns a registry holding the
// styles above; callers construct it once and pass it to the box factory.
// Registries are read-only once populated and safe for concurrent lookups.
package edge
