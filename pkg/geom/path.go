package geom

import (
	"math"
	"strconv"
	"strings"
)

// Op is a path drawing command.
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpArc
	OpClose
)

// Command is one drawing step. Arc commands draw the short circular arc of
// radius R from the current point to Pt, turning clockwise on screen when
// Sweep is set.
type Command struct {
	Op    Op
	Pt    Point
	R     float64
	Sweep bool
}

// Path is an immutable sequence of commands, possibly holding several
// subpaths. The zero Path is empty and ready to use.
type Path struct {
	cmds []Command
}

// Commands returns a copy of the path's commands.
func (p Path) Commands() []Command {
	out := make([]Command, len(p.cmds))
	copy(out, p.cmds)
	return out
}

// Empty reports whether the path has no commands.
func (p Path) Empty() bool { return len(p.cmds) == 0 }

func (p Path) with(c Command) Path {
	cmds := make([]Command, len(p.cmds), len(p.cmds)+1)
	copy(cmds, p.cmds)
	return Path{cmds: append(cmds, c)}
}

// MoveTo starts a new subpath at pt.
func (p Path) MoveTo(pt Point) Path { return p.with(Command{Op: OpMove, Pt: pt}) }

// LineTo draws a straight segment to pt.
func (p Path) LineTo(pt Point) Path { return p.with(Command{Op: OpLine, Pt: pt}) }

// ArcTo draws a circular arc of radius r to pt.
func (p Path) ArcTo(r float64, sweep bool, pt Point) Path {
	return p.with(Command{Op: OpArc, Pt: pt, R: r, Sweep: sweep})
}

// Close closes the current subpath.
func (p Path) Close() Path { return p.with(Command{Op: OpClose}) }

// Append returns p followed by all subpaths of q.
func (p Path) Append(q Path) Path {
	cmds := make([]Command, 0, len(p.cmds)+len(q.cmds))
	cmds = append(cmds, p.cmds...)
	return Path{cmds: append(cmds, q.cmds...)}
}

// Polyline builds a single subpath through pts. Consecutive duplicate points
// are dropped.
func Polyline(pts []Point, closed bool) Path {
	var cmds []Command
	for i, pt := range pts {
		if i == 0 {
			cmds = append(cmds, Command{Op: OpMove, Pt: pt})
			continue
		}
		if pt.Eq(cmds[len(cmds)-1].Pt) {
			continue
		}
		cmds = append(cmds, Command{Op: OpLine, Pt: pt})
	}
	if closed && len(cmds) > 1 {
		// the close segment replaces an explicit return to the start
		if last := cmds[len(cmds)-1]; last.Op == OpLine && last.Pt.Eq(cmds[0].Pt) {
			cmds = cmds[:len(cmds)-1]
		}
		cmds = append(cmds, Command{Op: OpClose})
	}
	return Path{cmds: cmds}
}

// Line builds an open two-point subpath, the shape of a single laser cut.
func Line(a, b Point) Path {
	return Path{cmds: []Command{{Op: OpMove, Pt: a}, {Op: OpLine, Pt: b}}}
}

// Translate returns p shifted by (dx, dy).
func (p Path) Translate(dx, dy float64) Path {
	cmds := make([]Command, len(p.cmds))
	for i, c := range p.cmds {
		if c.Op != OpClose {
			c.Pt = Point{c.Pt.X + dx, c.Pt.Y + dy}
		}
		cmds[i] = c
	}
	return Path{cmds: cmds}
}

// Frame is a rigid coordinate frame: a local point (x, y) maps to
// Origin + x*Dir + y*Dir.Perp(). Dir must be a unit vector.
type Frame struct {
	Origin Point
	Dir    Point
}

// Apply maps a local point into the parent coordinates.
func (f Frame) Apply(p Point) Point {
	return f.Origin.Add(f.Dir.Scale(p.X)).Add(f.Dir.Perp().Scale(p.Y))
}

// Inward is the unit normal of the frame's local y axis.
func (f Frame) Inward() Point { return f.Dir.Perp() }

// Transform maps every point of p through f. Frames are rotations plus
// translations, so arc radii and sweep directions are preserved.
func (p Path) Transform(f Frame) Path {
	cmds := make([]Command, len(p.cmds))
	for i, c := range p.cmds {
		if c.Op != OpClose {
			c.Pt = f.Apply(c.Pt)
		}
		cmds[i] = c
	}
	return Path{cmds: cmds}
}

// Subpath is a flattened subpath.
type Subpath struct {
	Points []Point
	Closed bool
}

// Flatten converts p into polylines, approximating each arc with segments no
// longer than tol along the curve (at least 2 per arc). A non-positive tol
// defaults to 0.5.
func (p Path) Flatten(tol float64) []Subpath {
	if tol <= 0 {
		tol = 0.5
	}
	var out []Subpath
	var cur *Subpath
	var start Point
	for _, c := range p.cmds {
		switch c.Op {
		case OpMove:
			out = append(out, Subpath{Points: []Point{c.Pt}})
			cur = &out[len(out)-1]
			start = c.Pt
		case OpLine:
			if cur == nil {
				continue
			}
			cur.Points = append(cur.Points, c.Pt)
		case OpArc:
			if cur == nil {
				continue
			}
			from := cur.Points[len(cur.Points)-1]
			cur.Points = append(cur.Points, arcPoints(from, c, tol)...)
		case OpClose:
			if cur == nil {
				continue
			}
			cur.Closed = true
			// drop an explicit repeat of the start point
			if n := len(cur.Points); n > 1 && cur.Points[n-1].Eq(start) {
				cur.Points = cur.Points[:n-1]
			}
		}
	}
	return out
}

// arcPoints returns the points after from along the arc command c, ending at
// c.Pt.
func arcPoints(from Point, c Command, tol float64) []Point {
	center, a0, sweep, ok := arcGeometry(from, c)
	if !ok {
		return []Point{c.Pt}
	}
	n := int(math.Ceil(math.Abs(sweep) * c.R / tol))
	if n < 2 {
		n = 2
	}
	pts := make([]Point, 0, n)
	for i := 1; i < n; i++ {
		a := a0 + sweep*float64(i)/float64(n)
		pts = append(pts, Point{center.X + c.R*math.Cos(a), center.Y + c.R*math.Sin(a)})
	}
	return append(pts, c.Pt)
}

// arcGeometry resolves the centre, start angle and signed sweep of the short
// arc from `from` to c.Pt. A radius too small for the chord is grown to half
// the chord, matching how SVG renderers scale out-of-range radii.
func arcGeometry(from Point, c Command) (center Point, a0, sweep float64, ok bool) {
	chord := c.Pt.Sub(from)
	d := chord.Len() / 2
	if d <= Eps || c.R <= Eps {
		return Point{}, 0, 0, false
	}
	r := math.Max(c.R, d)
	h := math.Sqrt(math.Max(r*r-d*d, 0))
	mid := from.Add(chord.Scale(0.5))
	n := chord.Unit().Perp()
	if !c.Sweep {
		n = n.Scale(-1)
	}
	center = mid.Add(n.Scale(h))
	a0 = math.Atan2(from.Y-center.Y, from.X-center.X)
	a1 := math.Atan2(c.Pt.Y-center.Y, c.Pt.X-center.X)
	sweep = a1 - a0
	if c.Sweep && sweep < 0 {
		sweep += 2 * math.Pi
	}
	if !c.Sweep && sweep > 0 {
		sweep -= 2 * math.Pi
	}
	return center, a0, sweep, true
}

// Bounds returns the bounding rectangle of p, arcs included.
func (p Path) Bounds() Rect {
	var pts []Point
	for _, sp := range p.Flatten(0.05) {
		pts = append(pts, sp.Points...)
	}
	return BoundsOf(pts)
}

// String formats p as SVG path data with coordinates rounded to prec decimal
// places. Output is deterministic: equal paths give byte-identical strings.
func (p Path) String(prec int) string {
	var b strings.Builder
	for i, c := range p.cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case OpMove:
			b.WriteString("M ")
			writePoint(&b, c.Pt, prec)
		case OpLine:
			b.WriteString("L ")
			writePoint(&b, c.Pt, prec)
		case OpArc:
			b.WriteString("A ")
			r := FormatNumber(c.R, prec)
			b.WriteString(r + " " + r + " 0 0 ")
			if c.Sweep {
				b.WriteString("1 ")
			} else {
				b.WriteString("0 ")
			}
			writePoint(&b, c.Pt, prec)
		case OpClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point, prec int) {
	b.WriteString(FormatNumber(pt.X, prec))
	b.WriteByte(' ')
	b.WriteString(FormatNumber(pt.Y, prec))
}

// FormatNumber renders v rounded to prec decimals without trailing zeros.
// Negative zero is printed as "0".
func FormatNumber(v float64, prec int) string {
	if prec < 0 {
		prec = 0
	}
	scale := math.Pow10(prec)
	v = math.Round(v*scale) / scale
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
