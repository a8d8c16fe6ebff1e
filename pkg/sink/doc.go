// Package sink serializes box layouts into cut files.
//
// # Overview
//
// A "sink" turns a computed [box.Layout] into bytes a laser cutter, a CAD
// tool or a browser can consume:
//
//   - SVG: one group per panel, translated to its sheet position
//   - DXF: every outline and cutout as LINE entities, y axis up
//   - JSON: placements, sizes and path data for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster preview (requires rsvg-convert)
//   - DOT: assembly graph of which panel sides join, for Graphviz
//   - Assembly: the DOT graph rendered to SVG with go-graphviz
//
// # SVG Output
//
// [RenderSVG] sizes the document to the layout's view box in physical units
// so the file opens at 1:1 scale in cutter software:
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithStroke("#ff0000", 0.1),
//	    sink.WithLabels(),
//	)
//
// Path data is written with the layout's precision unless [WithPrecision]
// overrides it. Equal layouts always render to identical bytes.
//
// # PDF and PNG
//
// [RenderPDF] and [RenderPNG] render SVG first and convert it with
// rsvg-convert from librsvg:
//
//	brew install librsvg         # macOS
//	apt install librsvg2-bin     # Debian/Ubuntu
//
// # Assembly Graph
//
// [AssemblyDOT] lists the panels as nodes and every jointed pair of sides as
// an edge labelled with the two side names, so a builder can see which edge
// goes where. [RenderAssembly] lays the graph out with the embedded Graphviz
// (no system install needed).
package sink
