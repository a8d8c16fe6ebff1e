// Package pack places panels on a cut sheet.
//
// Placement is sequential shelf packing: panels are laid left to right in
// input order, separated by a fixed gap, and a new row (shelf) starts below
// the tallest panel of the current row whenever the row is full or the next
// panel would cross the sheet width. The result is deterministic and never
// overlaps; it makes no attempt at optimal nesting.
package pack

import "github.com/matzehuels/fingerbox/pkg/geom"

// Size is the bounding box of one panel.
type Size struct {
	W, H float64
}

// Options configures placement.
type Options struct {
	Gap          float64 // space between neighbouring panels
	Margin       float64 // space around the outermost panels
	SheetWidth   float64 // maximum row extent including margins; 0 = unlimited
	PanelsPerRow int     // maximum panels per row; 0 = unlimited
}

// ViewBox is the coordinate frame of the packed sheet.
type ViewBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect returns the view box as a geom.Rect.
func (v ViewBox) Rect() geom.Rect {
	return geom.Rect{X: v.X, Y: v.Y, W: v.Width, H: v.Height}
}

// Pack returns the top-left placement of each size, in input order, and the
// view box enclosing them grown by the margin on every side.
//
// A panel wider than the sheet still gets a row of its own; SheetWidth only
// decides when to wrap.
func Pack(sizes []Size, opts Options) ([]geom.Point, ViewBox) {
	placements := make([]geom.Point, len(sizes))
	if len(sizes) == 0 {
		return placements, ViewBox{Width: 2 * opts.Margin, Height: 2 * opts.Margin}
	}

	x, y := opts.Margin, opts.Margin
	rowHeight := 0.0
	inRow := 0
	var bounds geom.Rect

	for i, s := range sizes {
		if inRow > 0 {
			full := opts.PanelsPerRow > 0 && inRow >= opts.PanelsPerRow
			tooWide := opts.SheetWidth > 0 && x+s.W+opts.Margin > opts.SheetWidth
			if full || tooWide {
				x = opts.Margin
				y += rowHeight + opts.Gap
				rowHeight = 0
				inRow = 0
			}
		}

		placements[i] = geom.Pt(x, y)
		r := geom.Rect{X: x, Y: y, W: s.W, H: s.H}
		if i == 0 {
			bounds = r
		} else {
			bounds = bounds.Union(r)
		}

		x += s.W + opts.Gap
		rowHeight = max(rowHeight, s.H)
		inRow++
	}

	return placements, ViewBox{
		X:      0,
		Y:      0,
		Width:  bounds.MaxX() + opts.Margin,
		Height: bounds.MaxY() + opts.Margin,
	}
}
