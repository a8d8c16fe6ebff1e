package box

import (
	"github.com/google/uuid"

	"github.com/matzehuels/fingerbox/pkg/edge"
	"github.com/matzehuels/fingerbox/pkg/geom"
	"github.com/matzehuels/fingerbox/pkg/joint"
	"github.com/matzehuels/fingerbox/pkg/pack"
)

// Panel names.
const (
	Bottom = "BOTTOM"
	Top    = "TOP"
	Front  = "FRONT"
	Back   = "BACK"
	Left   = "LEFT"
	Right  = "RIGHT"
)

// PanelOrder is the order panels appear in a Layout.
var PanelOrder = []string{Bottom, Front, Back, Left, Right, Top}

// Panel is one flat piece of the box.
//
// Path is in panel-local coordinates with the origin at the top-left corner
// of the bounding box; X and Y place that corner on the sheet. W and H are
// always NominalW+2t and NominalH+2t: every side is oversized by one material
// thickness to make room for the orthogonal panel's fingers.
type Panel struct {
	Name     string
	Path     geom.Path
	X, Y     float64
	W, H     float64
	NominalW float64
	NominalH float64
	// Sides records how each side was cut, clockwise from the top.
	Sides [4]Side
}

// Side is the edge style and role one panel side was cut with.
type Side struct {
	Style string
	Role  joint.Role
}

// Jointed reports whether the side mates with another panel.
func (s Side) Jointed() bool { return s.Style != "" && s.Style != edge.Plain }

// Bounds returns the panel's placed bounding box.
func (p Panel) Bounds() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// SheetPath returns the panel path in sheet coordinates.
func (p Panel) SheetPath() geom.Path {
	return p.Path.Translate(p.X, p.Y)
}

// Layout is the generated sheet. It is built once and never modified; callers
// must treat the slices as read-only.
type Layout struct {
	ID      uuid.UUID
	Params  Params
	Panels  []Panel
	ViewBox pack.ViewBox
}

// Panel returns the panel with the given name.
func (l *Layout) Panel(name string) (Panel, bool) {
	for _, p := range l.Panels {
		if p.Name == name {
			return p, true
		}
	}
	return Panel{}, false
}

// layoutNamespace scopes layout IDs.
var layoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/fingerbox/layout"))

// LayoutID returns the name-based UUID for params. Equal params always give
// equal IDs.
func LayoutID(p Params) uuid.UUID {
	return uuid.NewSHA1(layoutNamespace, []byte(p.Canonical()))
}

// newLayout places panels on the sheet and seals them into a Layout.
func newLayout(p Params, panels []Panel) *Layout {
	sizes := make([]pack.Size, len(panels))
	for i, pn := range panels {
		sizes[i] = pack.Size{W: pn.W, H: pn.H}
	}
	placements, vb := pack.Pack(sizes, pack.Options{
		Gap:          p.Render.Gap,
		Margin:       p.Render.Margin,
		SheetWidth:   p.Render.SheetWidth,
		PanelsPerRow: p.Render.PanelsPerRow,
	})
	for i := range panels {
		panels[i].X = placements[i].X
		panels[i].Y = placements[i].Y
	}
	return &Layout{
		ID:      LayoutID(p),
		Params:  p,
		Panels:  panels,
		ViewBox: vb,
	}
}
