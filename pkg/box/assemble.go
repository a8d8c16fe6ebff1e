package box

import (
	"math"

	"github.com/matzehuels/fingerbox/pkg/edge"
	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/geom"
	"github.com/matzehuels/fingerbox/pkg/joint"
)

// Side indices, clockwise from the top.
const (
	sideTop = iota
	sideRight
	sideBottom
	sideLeft
)

// SideNames names the side indices of Panel.Sides.
var SideNames = [4]string{"top", "right", "bottom", "left"}

// side is how one panel side is cut.
type side struct {
	style string
	role  joint.Role
}

func plainSide() side { return side{style: edge.Plain, role: joint.Male} }

// panelSpec is everything that differs between panels.
type panelSpec struct {
	name     string
	nominalW float64
	nominalH float64
	// shape holds the four outer vertices clockwise from top-left, before
	// joints are cut. Nil means the full (nominalW+2t) x (nominalH+2t)
	// rectangle.
	shape []geom.Point
	sides [4]side
	// cutouts are extra holes and slits in panel coordinates.
	cutouts []geom.Path
}

// builder is the per-generation context shared by every panel of one box.
type builder struct {
	params Params
	edges  *edge.Registry
	geo    edge.Geometry
}

func newBuilder(p Params, edges *edge.Registry) *builder {
	return &builder{
		params: p,
		edges:  edges,
		geo:    edge.Geometry{
			Thickness:  p.Thickness,
			Delta:      p.Delta(),
			DeltaField: joint.DeltaField(p.Thickness, p.Kerf, p.Clearance),
		},
	}
}

// jointStyle is the style used for every jointed side of the box. Mating
// sides must share a profile, so the choice is made once per box.
func (b *builder) jointStyle() string {
	switch {
	case b.params.Features.DovetailJoints:
		return edge.Dovetail
	case b.params.Features.ScrewHoles:
		return edge.Screw
	default:
		return edge.Finger
	}
}

func (b *builder) jointed(role joint.Role) side {
	return side{style: b.jointStyle(), role: role}
}

func (b *builder) rect(nominalW, nominalH float64) []geom.Point {
	t := b.params.Thickness
	w, h := nominalW+2*t, nominalH+2*t
	return []geom.Point{geom.Pt(0, 0), geom.Pt(w, 0), geom.Pt(w, h), geom.Pt(0, h)}
}

// assemble cuts each side of the panel with its edge style and joins the
// fragments into one closed outline.
//
// Side i runs from shape[i] to shape[i+1] in a frame whose local y axis
// points into the panel. Where two sides meet, the outline turns at the
// intersection of the first side's end depth with the second side's start
// depth, so a corner is cut away exactly when both sides start recessed.
func (b *builder) assemble(spec panelSpec) (Panel, error) {
	t := b.params.Thickness
	shape := spec.shape
	if shape == nil {
		shape = b.rect(spec.nominalW, spec.nominalH)
	}
	bounds := geom.BoundsOf(shape)

	var (
		frames [4]geom.Frame
		frags  [4]edge.Fragment
	)
	for i, sd := range spec.sides {
		a, z := shape[i], shape[(i+1)%4]
		d := z.Sub(a)
		frames[i] = geom.Frame{Origin: a, Dir: d.Unit()}

		style, err := b.edges.Lookup(sd.style)
		if err != nil {
			return Panel{}, attribute(err, spec.name, i)
		}
		g := b.geo
		if i%2 == 0 {
			g.Reach = bounds.H / 2
		} else {
			g.Reach = bounds.W / 2
		}
		frag, err := style.Generate(d.Len(), b.params.Finger, sd.role, g)
		if err != nil {
			return Panel{}, attribute(err, spec.name, i)
		}
		frags[i] = frag
	}

	var pts []geom.Point
	for i := range 4 {
		prev := (i + 3) % 4
		pts = append(pts, corner(shape[i], frames[prev], frags[prev].EndDepth(), frames[i], frags[i].StartDepth()))
		out := frags[i].Outline
		for _, p := range out[1 : len(out)-1] {
			pts = append(pts, frames[i].Apply(p))
		}
	}

	path := geom.Polyline(pts, true)
	for i, f := range frags {
		for _, c := range f.Cutouts {
			path = path.Append(c.Transform(frames[i]))
		}
	}
	for _, c := range spec.cutouts {
		path = path.Append(c)
	}

	pn := Panel{
		Name:     spec.name,
		Path:     path,
		W:        spec.nominalW + 2*t,
		H:        spec.nominalH + 2*t,
		NominalW: spec.nominalW,
		NominalH: spec.nominalH,
	}
	for i, sd := range spec.sides {
		pn.Sides[i] = Side{Style: sd.style, Role: sd.role}
	}
	return pn, nil
}

// corner returns where the outline turns at vertex v: the intersection of
// the incoming side's line offset inward by dIn and the outgoing side's line
// offset inward by dOut.
func corner(v geom.Point, in geom.Frame, dIn float64, out geom.Frame, dOut float64) geom.Point {
	base := v.Add(in.Inward().Scale(dIn))
	den := geom.Cross(in.Dir, out.Dir)
	if math.Abs(den) < geom.Eps {
		return base
	}
	r := in.Inward().Scale(dIn).Sub(out.Inward().Scale(dOut))
	u := -geom.Cross(r, out.Dir) / den
	return base.Add(in.Dir.Scale(u))
}

// attribute pins an edge error to the panel side it came from.
func attribute(err error, panel string, i int) error {
	where := panel + "/" + SideNames[i]
	e, ok := err.(*errors.Error)
	if !ok {
		return errors.Wrap(errors.ErrCodeInternal, err, "building %s", where)
	}
	return &errors.Error{
		Code:    e.Code,
		Message: e.Message,
		Field:   e.Field,
		Panels:  []string{where},
		Cause:   e.Cause,
	}
}

// liftOffLid is an unjointed rounded-corner plate the size of the outer box
// footprint.
func (b *builder) liftOffLid(nominalW, nominalH float64, cutouts []geom.Path) Panel {
	t := b.params.Thickness
	w, h := nominalW+2*t, nominalH+2*t
	path := geom.RoundedRect(0, 0, w, h, b.params.CornerRadius)
	for _, c := range cutouts {
		path = path.Append(c)
	}
	pn := Panel{
		Name:     Top,
		Path:     path,
		W:        w,
		H:        h,
		NominalW: nominalW,
		NominalH: nominalH,
	}
	for i := range pn.Sides {
		pn.Sides[i] = Side{Style: edge.Plain, Role: joint.Male}
	}
	return pn
}
