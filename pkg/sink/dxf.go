package sink

import (
	"os"
	"path/filepath"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/geom"
)

// DXFOption configures DXF rendering.
type DXFOption func(*dxfRenderer)

type dxfRenderer struct {
	tolerance float64
}

// WithArcTolerance sets the maximum chord length used to approximate arcs
// (default 0.2).
func WithArcTolerance(tol float64) DXFOption {
	return func(r *dxfRenderer) { r.tolerance = tol }
}

// RenderDXF renders every panel outline and cutout as DXF line entities in
// sheet coordinates. DXF's y axis points up, so the sheet is flipped about
// the view box.
func RenderDXF(l *box.Layout, opts ...DXFOption) ([]byte, error) {
	r := dxfRenderer{tolerance: 0.2}
	for _, opt := range opts {
		opt(&r)
	}

	dir, err := os.MkdirTemp("", "fingerbox-dxf-")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create dxf scratch dir")
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, l.ID.String()+".dxf")
	d := render.NewDXF(path)

	d.Lines(dxfLines(l, r.tolerance))

	if err := d.Save(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write dxf")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read dxf")
	}
	return data, nil
}

// dxfLines flattens every panel into line segments, flipped so y points up.
func dxfLines(l *box.Layout, tol float64) []*sdf.Line2 {
	h := l.ViewBox.Y + l.ViewBox.Height
	vec := func(p geom.Point) v2.Vec { return v2.Vec{X: p.X, Y: h - p.Y} }

	var lines []*sdf.Line2
	for _, p := range l.Panels {
		for _, sp := range p.SheetPath().Flatten(tol) {
			pts := sp.Points
			for i := 1; i < len(pts); i++ {
				lines = append(lines, &sdf.Line2{vec(pts[i-1]), vec(pts[i])})
			}
			if sp.Closed && len(pts) > 2 {
				lines = append(lines, &sdf.Line2{vec(pts[len(pts)-1]), vec(pts[0])})
			}
		}
	}
	return lines
}
