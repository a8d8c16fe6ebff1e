package edge

import (
	"math"

	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/geom"
	"github.com/matzehuels/fingerbox/pkg/joint"
)

// Flex slit band, in multiples of the material thickness.
const (
	slitPitch  = 2.0 // distance between slits
	slitStart  = 2.0 // depth of the band's near side
	slitLength = 4.0 // nominal slit length
)

func finger(length float64, spec joint.FingerSpec, role joint.Role, g Geometry) (Fragment, error) {
	p, err := joint.FingerEdge(length, spec, role, g.joint())
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Outline: p.Points}, nil
}

// flex cuts a band of slits perpendicular to the side so the panel bends
// along it. The joint itself is an ordinary finger joint.
func flex(length float64, spec joint.FingerSpec, role joint.Role, g Geometry) (Fragment, error) {
	f, err := finger(length, spec, role, g)
	if err != nil {
		return Fragment{}, err
	}
	f.Cutouts = Slits(length, g.Thickness, g.Reach)
	return f, nil
}

// Slits returns evenly spaced live-hinge cuts along a side of the given
// length, spaced 2t apart and kept clear of both ends by 2t. reach bounds how
// deep into the panel the cuts may run; slits that would not fit are omitted.
func Slits(length, t, reach float64) []geom.Path {
	y0 := slitStart * t
	y1 := y0 + slitLength*t
	if reach > 0 {
		y1 = math.Min(y1, reach-t)
	}
	if y1-y0 < t {
		return nil
	}
	pitch := slitPitch * t
	var out []geom.Path
	for x := pitch; x <= length-pitch+geom.Eps; x += pitch {
		out = append(out, geom.Line(geom.Pt(x, y0), geom.Pt(x, y1)))
	}
	return out
}

// SlitReach is the deepest point any flex slit reaches for thickness t, plus
// a thickness of material beyond it.
func SlitReach(t float64) float64 {
	return (slitStart + slitLength + 1) * t
}

func dovetail(length float64, spec joint.FingerSpec, role joint.Role, g Geometry) (Fragment, error) {
	l, err := joint.Divide(length, spec)
	if err != nil {
		return Fragment{}, err
	}
	flare := math.Max(0, math.Min(g.Thickness/4, (l.Width/4-math.Abs(g.Delta))/2))
	p, err := joint.DovetailEdge(length, spec, role, g.joint(), flare)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Outline: p.Points}, nil
}

// screw places a hole through the centre finger when this side owns it. The
// mating side gets the plain finger profile.
func screw(length float64, spec joint.FingerSpec, role joint.Role, g Geometry) (Fragment, error) {
	p, err := joint.FingerEdge(length, spec, role, g.joint())
	if err != nil {
		return Fragment{}, err
	}
	f := Fragment{Outline: p.Points}
	mid := (p.Layout.Segments - 1) / 2
	if role.IsOuter(mid) {
		r := math.Min(g.Thickness/3, p.Layout.Width/4)
		f.Cutouts = []geom.Path{geom.Circle(length/2, g.Thickness/2, r)}
	}
	return f, nil
}

func plain(length float64, _ joint.FingerSpec, _ joint.Role, _ Geometry) (Fragment, error) {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Fragment{}, errors.InvalidDimension("length", nil, "edge length must be positive, got %g", length)
	}
	return Fragment{Outline: []geom.Point{geom.Pt(0, 0), geom.Pt(length, 0)}}, nil
}
