package joint

import (
	"math"

	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/geom"
)

// Profile is one finger edge in edge-local coordinates.
type Profile struct {
	Points []geom.Point
	Layout Layout
	Role   Role
}

// Start returns the depth of the first vertex: 0 for Male, t for Female.
func (p Profile) Start() float64 { return p.Points[0].Y }

// End returns the depth of the last vertex. Since the segment count is odd it
// always equals Start.
func (p Profile) End() float64 { return p.Points[len(p.Points)-1].Y }

// Tabs returns the outer-level intervals [x0, x1] of the profile, measured at
// depth 0. For a male profile these are the protruding tabs; for a female one
// they are the fingers left between notches.
func (p Profile) Tabs() [][2]float64 {
	var out [][2]float64
	for i := 0; i+1 < len(p.Points); i++ {
		a, b := p.Points[i], p.Points[i+1]
		if a.Y == 0 && b.Y == 0 {
			out = append(out, [2]float64{a.X, b.X})
		}
	}
	return out
}

// FingerEdge builds the straight finger profile of an edge.
func FingerEdge(length float64, spec FingerSpec, role Role, g Geometry) (Profile, error) {
	return profile(length, spec, role, g, 0)
}

// DovetailEdge builds a finger profile whose tabs are wider at the tip than at
// the root by flare on each side. The female profile receives matching
// undercut notches.
func DovetailEdge(length float64, spec FingerSpec, role Role, g Geometry, flare float64) (Profile, error) {
	if flare < 0 || math.IsNaN(flare) {
		return Profile{}, errors.InvalidDimension("flare", nil, "dovetail flare must be non-negative, got %g", flare)
	}
	return profile(length, spec, role, g, flare)
}

func profile(length float64, spec FingerSpec, role Role, g Geometry, flare float64) (Profile, error) {
	if role != Male && role != Female {
		return Profile{}, errors.Configuration("role", "invalid joint role %d", int(role))
	}
	if g.Thickness <= 0 || math.IsNaN(g.Thickness) || math.IsInf(g.Thickness, 0) {
		return Profile{}, errors.InvalidDimension("thickness", nil, "thickness must be positive, got %g", g.Thickness)
	}
	if math.IsNaN(g.Delta) || math.IsInf(g.Delta, 0) {
		return Profile{}, errors.InvalidDimension(g.deltaField(), nil, "tolerance offset must be finite, got %g", g.Delta)
	}

	l, err := Divide(length, spec)
	if err != nil {
		return Profile{}, err
	}
	if math.Abs(g.Delta)+flare >= l.Width/4 {
		return Profile{}, errors.InvalidDimension(g.deltaField(), nil,
			"kerf/clearance offset %g is too large for %g wide fingers", math.Abs(g.Delta)+flare, l.Width)
	}
	// The end segments share their first t units with the corner square.
	if l.Width <= g.Thickness+math.Abs(g.Delta)+flare {
		return Profile{}, errors.InvalidDimension(SpecField(spec), nil,
			"finger segments of %g must be wider than the material thickness %g", l.Width, g.Thickness)
	}

	t := g.Thickness
	depth := func(i int) float64 {
		if role.IsOuter(i) {
			return 0
		}
		return t
	}

	pts := make([]geom.Point, 0, 2*l.Segments)
	pts = append(pts, geom.Pt(0, depth(0)))
	for k := 1; k < l.Segments; k++ {
		x := float64(k) * l.Width
		// s points from the transition into the outer-level segment.
		s := 1.0
		if !role.IsOuter(k - 1) {
			s = -1
		}
		xOuter, xInset := x+s*g.Delta, x+s*g.Delta
		if role == Male {
			xOuter += s * flare
		} else {
			xInset -= s * flare
		}
		at := func(y float64) float64 {
			if y == 0 {
				return xOuter
			}
			return xInset
		}
		a, b := depth(k-1), depth(k)
		pts = append(pts, geom.Pt(at(a), a), geom.Pt(at(b), b))
	}
	pts = append(pts, geom.Pt(length, depth(l.Segments-1)))

	return Profile{Points: pts, Layout: l, Role: role}, nil
}
