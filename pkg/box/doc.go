// Package box turns box parameters into a sheet of interlocking panels.
//
// # Overview
//
// A [Factory] maps box types to topology builders. Each builder composes the
// panels of its topology from edge styles looked up in an [edge.Registry],
// all cut with the one tolerance offset derived from the params:
//
//	factory := box.NewFactory(edge.Builtin())
//	gen, err := factory.Generator(box.Basic)
//	if err != nil {
//	    return err
//	}
//	layout, err := gen.Generate(box.Params{
//	    Width: 100, Depth: 80, Height: 60, Thickness: 3,
//	    Kerf: 0.15, Clearance: 0.05,
//	    Finger: joint.ByWidth{Width: 10},
//	    Lid:    box.LidFlat,
//	})
//
// # Topologies
//
//   - basic: four vertical walls on a BOTTOM, optional TOP
//   - angled: walls cut to a sloped top; the lid is an unjointed plate
//   - flex: basic with live-hinge slits in FRONT and BACK
//   - tray: basic with walls at least [MinTrayHeight] tall and never a TOP
//
// # Panels
//
// Layouts list panels in the order BOTTOM, FRONT, BACK, LEFT, RIGHT, TOP: five
// without a lid (and always for trays), six otherwise. Every panel's bounding
// box is its nominal size plus one material thickness on each side, and its
// path is a closed outline followed by any cutouts.
//
// # Errors
//
// Parameters are validated before any geometry is built; every edge is then
// checked as it is cut. Failures are [errors.ErrCodeInvalidDimension],
// [errors.ErrCodeConfiguration] or [errors.ErrCodeUnknownBoxType] errors that
// name the offending field and the panels (or PANEL/side pairs) it affects.
// A failed generation never returns a partial layout.
//
// Generation is pure: equal params produce identical layouts, including the
// layout ID, and generators may be used concurrently.
package box
