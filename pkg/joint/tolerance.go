package joint

import "math"

// Delta returns the signed offset applied to every finger transition of a
// box:
//
//	delta = kerf/2 - clearance * max(1, thickness/3)
//
// Positive values compensate for material the beam burns away; positive
// clearance pulls the value down for a looser fit. Clearance scales with
// thickness above 3 units because thicker stock needs proportionally more
// play.
func Delta(thickness, kerf, clearance float64) float64 {
	return kerf/2 - clearance*math.Max(1, thickness/3)
}

// DeltaField names the parameter that dominates Delta: "clearance" when the
// scaled clearance term outweighs half the kerf, "kerf" otherwise.
func DeltaField(thickness, kerf, clearance float64) string {
	if math.Abs(clearance*math.Max(1, thickness/3)) > kerf/2 {
		return "clearance"
	}
	return "kerf"
}

// Geometry is the per-box context every edge call shares.
type Geometry struct {
	Thickness  float64 // finger depth
	Delta      float64 // transition offset, see Delta
	DeltaField string  // parameter a bad Delta is reported against; "" means kerf
}

func (g Geometry) deltaField() string {
	if g.DeltaField == "" {
		return "kerf"
	}
	return g.DeltaField
}
