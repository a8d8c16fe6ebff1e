package geom

import "math"

// ClampRadius limits a corner radius to what a w×h rectangle can hold:
// negative radii become 0 and radii above min(w,h)/2 become min(w,h)/2.
func ClampRadius(w, h, r float64) float64 {
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	return math.Min(r, math.Min(w, h)/2)
}

// RoundedRect returns the closed clockwise outline of the w×h rectangle at
// (x, y) with corner radius r. A radius of 0 gives a plain rectangle; radii
// larger than min(w,h)/2 are clamped (see [ClampRadius]), so the outline is
// never self-intersecting.
func RoundedRect(x, y, w, h, r float64) Path {
	r = ClampRadius(w, h, r)
	if r == 0 {
		return Polyline([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, true)
	}
	// Each corner is a straight run followed by a quarter arc; zero-length
	// runs (r == w/2 or r == h/2) are skipped.
	corners := [4]struct{ lineTo, arcTo Point }{
		{Point{x + w - r, y}, Point{x + w, y + r}},
		{Point{x + w, y + h - r}, Point{x + w - r, y + h}},
		{Point{x + r, y + h}, Point{x, y + h - r}},
		{Point{x, y + r}, Point{x + r, y}},
	}
	start := Point{x + r, y}
	p := Path{}.MoveTo(start)
	last := start
	for _, c := range corners {
		if !c.lineTo.Eq(last) {
			p = p.LineTo(c.lineTo)
		}
		p = p.ArcTo(r, true, c.arcTo)
		last = c.arcTo
	}
	return p.Close()
}

// Slot returns a stadium-shaped outline (a rounded rectangle whose short
// sides are full semicircles), the usual shape of a carry handle.
func Slot(x, y, w, h float64) Path {
	return RoundedRect(x, y, w, h, math.Min(w, h)/2)
}

// Circle returns a closed circular outline built from two half arcs.
func Circle(cx, cy, r float64) Path {
	return Path{}.
		MoveTo(Point{cx + r, cy}).
		ArcTo(r, true, Point{cx - r, cy}).
		ArcTo(r, true, Point{cx + r, cy}).
		Close()
}
