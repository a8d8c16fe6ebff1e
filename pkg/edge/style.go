package edge

import (
	"github.com/matzehuels/fingerbox/pkg/geom"
	"github.com/matzehuels/fingerbox/pkg/joint"
)

// Style names of the built-in edge styles.
const (
	Finger   = "finger"
	Flex     = "flex"
	Dovetail = "dovetail"
	Screw    = "screw"
	Plain    = "plain"
)

// Geometry is the per-box context passed to every style.
type Geometry struct {
	Thickness  float64 // finger depth
	Delta      float64 // kerf/clearance offset, see joint.Delta
	Reach      float64 // depth cutouts may extend to; 0 means unbounded
	DeltaField string  // see joint.DeltaField
}

func (g Geometry) joint() joint.Geometry {
	return joint.Geometry{Thickness: g.Thickness, Delta: g.Delta, DeltaField: g.DeltaField}
}

// Fragment is one generated side in edge-local coordinates.
type Fragment struct {
	Outline []geom.Point // open polyline from x=0 to x=length
	Cutouts []geom.Path  // closed holes or open slit cuts
}

// StartDepth is the depth of the outline's first vertex.
func (f Fragment) StartDepth() float64 { return f.Outline[0].Y }

// EndDepth is the depth of the outline's last vertex.
func (f Fragment) EndDepth() float64 { return f.Outline[len(f.Outline)-1].Y }

// Style generates one panel side.
type Style interface {
	Generate(length float64, spec joint.FingerSpec, role joint.Role, g Geometry) (Fragment, error)
}

// StyleFunc adapts a function to the Style interface.
type StyleFunc func(length float64, spec joint.FingerSpec, role joint.Role, g Geometry) (Fragment, error)

func (f StyleFunc) Generate(length float64, spec joint.FingerSpec, role joint.Role, g Geometry) (Fragment, error) {
	return f(length, spec, role, g)
}
