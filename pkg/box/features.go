package box

import (
	"math"

	"github.com/matzehuels/fingerbox/pkg/geom"
)

// Feature sizing.
const (
	handleMaxWidth  = 80.0
	handleMaxHeight = 20.0
	magnetRadius    = 3.0
	maxVentRows     = 40
)

// wallFace describes the usable face of a wall for cutout placement.
type wallFace struct {
	w, h float64 // bounding size, nominal + 2t
	// topAt is the y of the top edge at x; sloped on angled walls.
	topAt func(x float64) float64
}

func flatTop(float64) float64 { return 0 }

func (f wallFace) topBetween(x0, x1 float64) float64 {
	return math.Max(f.topAt(x0), f.topAt(x1))
}

// wallCutouts returns the feature holes for a FRONT or BACK wall. sideDepth
// is how far cutouts of the vertical sides reach into the wall.
func (b *builder) wallCutouts(name string, f wallFace, flexBand bool, sideDepth float64) []geom.Path {
	t := b.params.Thickness
	feats := b.params.Features
	var (
		out      []geom.Path
		keepOut  []geom.Rect
		belowTop = 0.0
	)
	if sideDepth > 0 {
		keepOut = append(keepOut,
			geom.Rect{X: 0, Y: 0, W: sideDepth, H: f.h},
			geom.Rect{X: f.w - sideDepth, Y: 0, W: sideDepth, H: f.h})
	}

	if feats.HandleHole && b.params.Lid != LidLiftOff {
		hw := math.Min(b.params.Width*0.4, handleMaxWidth)
		hh := math.Min(b.params.Height*0.25, handleMaxHeight)
		x0 := (f.w - hw) / 2
		y0 := f.topBetween(x0, x0+hw) + 3*t
		if hh >= t && hw >= hh && y0+hh <= f.h-3*t {
			out = append(out, geom.Slot(x0, y0, hw, hh))
			r := geom.Rect{X: x0, Y: y0, W: hw, H: hh}
			keepOut = append(keepOut, r.Grow(t))
			belowTop = r.MaxY() + t
		}
	}

	if flexBand {
		slits, band := b.flexBand(f, belowTop)
		out = append(out, slits...)
		if !band.Empty() {
			keepOut = append(keepOut, band)
		}
	}

	if feats.VentPattern && name == Back {
		out = append(out, b.vents(f, keepOut)...)
	}
	return out
}

// flexBand cuts vertical live-hinge slits, spaced 2t apart, across the
// central third of the wall. Slits start below minY so they clear a handle.
func (b *builder) flexBand(f wallFace, minY float64) ([]geom.Path, geom.Rect) {
	t := b.params.Thickness
	pitch := 2 * t
	x0, x1 := f.w/3, 2*f.w/3
	yEnd := f.h - 2*t

	var out []geom.Path
	for x := x0; x <= x1+geom.Eps; x += pitch {
		y := math.Max(f.topAt(x)+2*t, minY)
		if yEnd-y < t {
			continue
		}
		out = append(out, geom.Line(geom.Pt(x, y), geom.Pt(x, yEnd)))
	}
	if len(out) == 0 {
		return nil, geom.Rect{}
	}
	return out, geom.Rect{X: x0 - t, Y: 0, W: x1 - x0 + 2*t, H: f.h}
}

// vents lays a grid of round holes over the free part of the wall, skipping
// any hole that would touch a keep-out area.
func (b *builder) vents(f wallFace, keepOut []geom.Rect) []geom.Path {
	t := b.params.Thickness
	r := t
	pitch := 3 * r

	top := f.topBetween(0, f.w) + 3*t
	region := geom.Rect{X: 3 * t, Y: top, W: f.w - 6*t, H: f.h - 3*t - top}
	if region.W < 2*r || region.H < 2*r {
		return nil
	}
	cols := min(int((region.W-2*r)/pitch)+1, maxVentRows)
	rows := min(int((region.H-2*r)/pitch)+1, maxVentRows)
	// Centre the grid in the region.
	ox := region.X + r + (region.W-2*r-float64(cols-1)*pitch)/2
	oy := region.Y + r + (region.H-2*r-float64(rows-1)*pitch)/2

	var out []geom.Path
	for j := range rows {
		for i := range cols {
			cx, cy := ox+float64(i)*pitch, oy+float64(j)*pitch
			hole := geom.Rect{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
			if overlapsAny(hole, keepOut) {
				continue
			}
			out = append(out, geom.Circle(cx, cy, r))
		}
	}
	return out
}

// topCutouts returns the feature holes for a TOP panel of the given
// bounding size.
func (b *builder) topCutouts(w, h float64) []geom.Path {
	t := b.params.Thickness
	feats := b.params.Features
	var out []geom.Path

	if feats.HandleHole && b.params.Lid == LidLiftOff {
		hw := math.Min(b.params.Width*0.3, handleMaxWidth)
		hh := math.Min(b.params.Depth*0.15, handleMaxHeight)
		if hh >= t && hw >= hh {
			out = append(out, geom.Slot((w-hw)/2, (h-hh)/2, hw, hh))
		}
	}

	if feats.Magnets {
		r := math.Min(magnetRadius, math.Min(w, h)/10)
		c := 2*t + r
		if r > 0 && 2*c+2*r < math.Min(w, h) {
			for _, p := range []geom.Point{{X: c, Y: c}, {X: w - c, Y: c}, {X: w - c, Y: h - c}, {X: c, Y: h - c}} {
				out = append(out, geom.Circle(p.X, p.Y, r))
			}
		}
	}
	return out
}

func overlapsAny(r geom.Rect, others []geom.Rect) bool {
	for _, o := range others {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}
