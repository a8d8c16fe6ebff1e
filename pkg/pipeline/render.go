package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/sink"
)

// Render serializes l in every requested format. opts must already be
// validated.
func Render(ctx context.Context, l *box.Layout, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatDXF:
			data, err = sink.RenderDXF(l)
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONIndent(), sink.WithJSONParams())
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatDOT:
			data = []byte(sink.AssemblyDOT(l))
		case FormatAssembly:
			data, err = sink.RenderAssembly(ctx, l)
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			if errors.GetCode(err) != "" {
				return nil, err
			}
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderSafely is Render with panics returned as internal errors.
func renderSafely(ctx context.Context, l *box.Layout, opts Options) (artifacts map[string][]byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			artifacts = nil
			err = errors.New(errors.ErrCodeInternal, "rendering %s: %v", l.ID, r)
		}
	}()
	return Render(ctx, l, opts)
}

// buildSVGOptions builds SVG rendering options shared by SVG, PDF and PNG.
func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithStroke(opts.Stroke, opts.StrokeWidth),
		sink.WithUnits(opts.Units()),
	}
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	return svgOpts
}
