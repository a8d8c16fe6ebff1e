// Package geom provides the 2D primitives the box generator is built from.
//
// # Coordinates
//
// All coordinates use the SVG convention: x grows to the right, y grows
// downward, and a positive arc sweep turns clockwise on screen. Units are
// whatever linear unit the caller uses (millimetres by convention); nothing in
// this package converts units.
//
// # Paths
//
// A [Path] is an ordered list of drawing commands (move, line, arc, close)
// that may hold several subpaths: a panel outline followed by its cutouts.
// Paths are values; every transforming method returns a new Path.
//
//	p := geom.RoundedRect(0, 0, 106, 66, 4)
//	p = p.Append(geom.Circle(53, 33, 2))
//	fmt.Println(p.String(3)) // "M 4 0 L 102 0 A 4 4 0 0 1 106 4 ..."
//
// [Path.Flatten] turns arcs into polylines for consumers that only understand
// straight segments (DXF export, overlap checks).
package geom
