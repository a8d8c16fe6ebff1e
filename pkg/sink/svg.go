package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/geom"
)

const (
	defaultStroke      = "#000000"
	defaultStrokeWidth = 0.1
	defaultUnits       = "mm"
	labelColor         = "#0000ff"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	stroke      string
	strokeWidth float64
	units       string
	labels      bool
	precision   int
}

// WithStroke sets the cut line colour and width.
func WithStroke(color string, width float64) SVGOption {
	return func(r *svgRenderer) { r.stroke, r.strokeWidth = color, width }
}

// WithUnits sets the unit suffix of the document width and height. An empty
// string writes unitless user coordinates.
func WithUnits(u string) SVGOption { return func(r *svgRenderer) { r.units = u } }

// WithLabels engraves each panel's name at its centre in a separate colour.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithPrecision overrides the number of decimals in path data.
func WithPrecision(p int) SVGOption { return func(r *svgRenderer) { r.precision = p } }

// RenderSVG renders l as a standalone SVG document.
func RenderSVG(l *box.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{
		stroke:      defaultStroke,
		strokeWidth: defaultStrokeWidth,
		units:       defaultUnits,
		precision:   l.Params.Render.Precision,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.precision <= 0 {
		r.precision = box.DefaultPrecision
	}

	num := func(v float64) string { return geom.FormatNumber(v, r.precision) }
	vb := l.ViewBox

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s%s" height="%s%s">`+"\n",
		num(vb.X), num(vb.Y), num(vb.Width), num(vb.Height),
		num(vb.Width), r.units, num(vb.Height), r.units)
	fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(l.ID.String()))

	for _, p := range l.Panels {
		fmt.Fprintf(&buf, `  <g id="%s" transform="translate(%s %s)">`+"\n", escape(p.Name), num(p.X), num(p.Y))
		fmt.Fprintf(&buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
			p.Path.String(r.precision), escape(r.stroke), num(r.strokeWidth))
		if r.labels {
			renderLabel(&buf, p, num)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderLabel(buf *bytes.Buffer, p box.Panel, num func(float64) string) {
	size := min(p.W, p.H) / 8
	fmt.Fprintf(buf, `    <text x="%s" y="%s" font-family="sans-serif" font-size="%s" text-anchor="middle" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
		num(p.W/2), num(p.H/2), num(size), labelColor, escape(p.Name))
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
