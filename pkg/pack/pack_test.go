package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fingerbox/pkg/geom"
)

func rects(sizes []Size, pts []geom.Point) []geom.Rect {
	out := make([]geom.Rect, len(sizes))
	for i, s := range sizes {
		out[i] = geom.Rect{X: pts[i].X, Y: pts[i].Y, W: s.W, H: s.H}
	}
	return out
}

func TestPackRows(t *testing.T) {
	sizes := []Size{{106, 86}, {106, 66}, {106, 66}, {86, 66}, {86, 66}, {106, 86}}
	pts, vb := Pack(sizes, Options{Gap: 5, Margin: 10, PanelsPerRow: 3})

	assert.Equal(t, []geom.Point{
		{X: 10, Y: 10}, {X: 121, Y: 10}, {X: 232, Y: 10},
		{X: 10, Y: 101}, {X: 101, Y: 101}, {X: 192, Y: 101},
	}, pts)
	assert.Equal(t, ViewBox{X: 0, Y: 0, Width: 348, Height: 197}, vb)
}

func TestPackSheetWidthWraps(t *testing.T) {
	sizes := []Size{{50, 10}, {50, 20}, {50, 10}}
	pts, vb := Pack(sizes, Options{Gap: 5, Margin: 10, SheetWidth: 130})

	// 10 + 50 + 5 + 50 + 10 = 125 fits; a third panel would need 180.
	assert.Equal(t, geom.Pt(65, 10), pts[1])
	assert.Equal(t, geom.Pt(10, 35), pts[2])
	assert.Equal(t, 125.0, vb.Width)
	assert.Equal(t, 55.0, vb.Height)
}

func TestPackOversizedPanelGetsOwnRow(t *testing.T) {
	pts, vb := Pack([]Size{{10, 10}, {500, 10}}, Options{Gap: 5, Margin: 10, SheetWidth: 100})
	assert.Equal(t, geom.Pt(10, 25), pts[1])
	assert.Equal(t, 520.0, vb.Width)
}

func TestPackNoOverlapAndContained(t *testing.T) {
	sizes := []Size{{30, 40}, {10, 90}, {70, 5}, {25, 25}, {60, 60}, {1, 1}, {44, 12}}
	for _, opts := range []Options{
		{Gap: 5, Margin: 10, PanelsPerRow: 3},
		{Gap: 0, Margin: 0},
		{Gap: 2, Margin: 7, SheetWidth: 120},
	} {
		pts, vb := Pack(sizes, opts)
		rs := rects(sizes, pts)
		for i := range rs {
			assert.True(t, vb.Rect().Contains(rs[i].Grow(opts.Margin)), "panel %d outside view box with %+v", i, opts)
			for j := i + 1; j < len(rs); j++ {
				assert.False(t, rs[i].Overlaps(rs[j]), "panels %d and %d overlap with %+v", i, j, opts)
			}
		}
	}
}

func TestPackEmpty(t *testing.T) {
	pts, vb := Pack(nil, Options{Margin: 10})
	require.Empty(t, pts)
	assert.Equal(t, ViewBox{Width: 20, Height: 20}, vb)
}
