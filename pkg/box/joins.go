package box

// Join is one pair of panel sides that are cut to fit together.
type Join struct {
	A, B         string // panel names
	ASide, BSide int    // indices into Panel.Sides
	Style        string
}

// String formats the join as "FRONT/left-LEFT/left".
func (j Join) String() string {
	return j.A + "/" + SideNames[j.ASide] + "-" + j.B + "/" + SideNames[j.BSide]
}

type sideRef struct {
	panel string
	side  int
}

// mates lists which sides meet when the box is folded up. Side walls are
// drawn with their front edge on the left, and BACK is seen from outside, so
// its left side meets RIGHT.
var mates = [][2]sideRef{
	{{Bottom, sideTop}, {Back, sideBottom}},
	{{Bottom, sideRight}, {Right, sideBottom}},
	{{Bottom, sideBottom}, {Front, sideBottom}},
	{{Bottom, sideLeft}, {Left, sideBottom}},
	{{Front, sideLeft}, {Left, sideLeft}},
	{{Front, sideRight}, {Right, sideLeft}},
	{{Back, sideLeft}, {Right, sideRight}},
	{{Back, sideRight}, {Left, sideRight}},
	{{Top, sideTop}, {Back, sideTop}},
	{{Top, sideRight}, {Right, sideTop}},
	{{Top, sideBottom}, {Front, sideTop}},
	{{Top, sideLeft}, {Left, sideTop}},
}

// Joins returns the jointed side pairs of the layout in a fixed order. Pairs
// where either side is plain, or a panel is missing, are left out.
func (l *Layout) Joins() []Join {
	var out []Join
	for _, m := range mates {
		a, okA := l.Panel(m[0].panel)
		b, okB := l.Panel(m[1].panel)
		if !okA || !okB {
			continue
		}
		sa, sb := a.Sides[m[0].side], b.Sides[m[1].side]
		if !sa.Jointed() || !sb.Jointed() {
			continue
		}
		out = append(out, Join{
			A: a.Name, ASide: m[0].side,
			B: b.Name, BSide: m[1].side,
			Style: sa.Style,
		})
	}
	return out
}
