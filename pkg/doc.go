// Package pkg provides the core libraries for fingerbox box generation.
//
// # Overview
//
// Fingerbox turns the dimensions of a box into the flat panels a laser
// cutter needs. Panels interlock with finger joints whose fingers and slots
// are offset for the beam's kerf and the desired fit, so the parts press
// together without glue. The pkg directory is organized into three areas:
//
//  1. Geometry - [geom], [joint], [edge], [box] and [pack]
//  2. Output - [sink] and [config]
//  3. Orchestration - [pipeline], [cache], [api] and [observability]
//
// # Architecture
//
// The typical data flow through fingerbox:
//
//	Params (flags, TOML file, or JSON request)
//	         ↓
//	    [box] package (topology builder per box type)
//	         ↓
//	    [joint] + [edge] packages (one tolerance delta, one profile per side)
//	         ↓
//	    [pack] package (shelf placement + view box)
//	         ↓
//	    SVG/DXF/JSON/PDF/PNG/DOT output
//
// # Quick Start
//
// Generate a box with a flat lid and write it as SVG:
//
//	import (
//	    "github.com/matzehuels/fingerbox/pkg/box"
//	    "github.com/matzehuels/fingerbox/pkg/joint"
//	    "github.com/matzehuels/fingerbox/pkg/sink"
//	)
//
//	l, err := box.NewFactory(nil).Generate(box.Params{
//	    Width: 100, Depth: 80, Height: 60,
//	    Thickness: 3, Kerf: 0.15, Clearance: 0.05,
//	    Finger: joint.ByWidth{Width: 10},
//	    Lid:    box.LidFlat,
//	})
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l)
//
// # Main Packages
//
// ## Geometry
//
// [geom] - Points, rectangles and paths with deterministic number formatting.
// Rounded rectangles, circles and slots for feature cutouts.
//
// [joint] - The tolerance model (Delta), finger specs by width or by count,
// segment parity and the finger edge profile shared by every joint.
//
// [edge] - A registry of edge styles: finger, flex, dovetail, screw and plain.
// New styles can be registered without touching the builders.
//
// [box] - Parameters, validation and the topology builders (basic, angled,
// flex, tray). The factory dispatches a box type to its builder and returns
// an immutable Layout with a deterministic ID.
//
// [pack] - Shelf placement of panels on one sheet, with gap and margin.
//
// ## Output
//
// [sink] - Serializers. SVG and DXF for cutting, JSON for tools, PDF and PNG
// for previews, and a Graphviz assembly graph showing which sides join.
//
// [config] - TOML parameter files. The same shape is accepted as JSON by the
// HTTP API.
//
// ## Orchestration
//
// [pipeline] - Generate then render, with per-format artifact caching. Used by
// both the CLI and the API so they behave the same.
//
// [cache] - Artifact and parameter cache backends: directory, Redis and
// MongoDB, selected by URL.
//
// [api] - JSON HTTP API for live-preview clients.
//
// [observability] - Hooks for pipeline, cache and request events.
//
// [errors] - Structured errors with codes, the offending field and the panels
// a bad dimension affects.
//
// # Testing
//
// Run tests:
//
//	go test ./...                       # All tests
//	go test ./pkg/box/...               # Specific package
//	FINGERBOX_TEST_REDIS=redis://localhost:6379/15 go test ./pkg/cache/
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/geom
// [joint]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/joint
// [edge]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/edge
// [box]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/box
// [pack]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/pack
// [sink]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/sink
// [config]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/cache
// [api]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/api
// [observability]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/fingerbox/pkg/errors
package pkg
