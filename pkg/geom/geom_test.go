package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundedRectPlain(t *testing.T) {
	p := RoundedRect(0, 0, 10, 5, 0)
	assert.Equal(t, "M 0 0 L 10 0 L 10 5 L 0 5 Z", p.String(3))
	assert.Equal(t, Rect{X: 0, Y: 0, W: 10, H: 5}, p.Bounds())
}

func TestRoundedRectArcs(t *testing.T) {
	p := RoundedRect(0, 0, 10, 6, 2)
	assert.Equal(t,
		"M 2 0 L 8 0 A 2 2 0 0 1 10 2 L 10 4 A 2 2 0 0 1 8 6 L 2 6 A 2 2 0 0 1 0 4 L 0 2 A 2 2 0 0 1 2 0 Z",
		p.String(3))

	b := p.Bounds()
	assert.InDelta(t, 0, b.X, 1e-9)
	assert.InDelta(t, 0, b.Y, 1e-9)
	assert.InDelta(t, 10, b.W, 1e-9)
	assert.InDelta(t, 6, b.H, 1e-9)
}

func TestRoundedRectClampsRadius(t *testing.T) {
	// r = 50 exceeds min(w,h)/2 = 3 and is clamped: the straight sides of
	// length zero disappear and the result is a stadium.
	p := RoundedRect(0, 0, 10, 6, 50)
	assert.Equal(t, Slot(0, 0, 10, 6).String(3), p.String(3))

	sps := p.Flatten(0.1)
	require.Len(t, sps, 1)
	assert.True(t, sps[0].Closed)
	assert.False(t, SelfIntersects(sps[0].Points), "clamped outline must be simple")
	assert.InDelta(t, 10, p.Bounds().W, 1e-9)
}

func TestRoundedRectNegativeRadius(t *testing.T) {
	assert.Equal(t, RoundedRect(0, 0, 4, 4, 0).String(3), RoundedRect(0, 0, 4, 4, -1).String(3))
}

func TestClampRadius(t *testing.T) {
	tests := []struct {
		name    string
		w, h, r float64
		want    float64
	}{
		{"inside", 10, 10, 2, 2},
		{"exact half", 10, 6, 3, 3},
		{"too large", 10, 6, 4, 3},
		{"negative", 10, 6, -1, 0},
		{"nan", 10, 6, math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampRadius(tt.w, tt.h, tt.r))
		})
	}
}

func TestCircleBounds(t *testing.T) {
	b := Circle(5, 5, 2).Bounds()
	assert.InDelta(t, 3, b.X, 1e-3)
	assert.InDelta(t, 3, b.Y, 1e-3)
	assert.InDelta(t, 4, b.W, 1e-3)
	assert.InDelta(t, 4, b.H, 1e-3)
}

func TestPolylineDropsDuplicates(t *testing.T) {
	p := Polyline([]Point{{0, 0}, {0, 0}, {1, 0}, {1, 1}, {0, 0}}, true)
	assert.Equal(t, "M 0 0 L 1 0 L 1 1 Z", p.String(3))
}

func TestTranslateAndAppend(t *testing.T) {
	p := Line(Pt(0, 0), Pt(1, 1)).Append(Circle(0, 0, 1)).Translate(10, 20)
	sps := p.Flatten(0.5)
	require.Len(t, sps, 2)
	assert.False(t, sps[0].Closed)
	assert.True(t, sps[1].Closed)
	assert.Equal(t, Pt(10, 20), sps[0].Points[0])
	assert.Equal(t, Pt(11, 21), sps[0].Points[1])
}

func TestFrameTransform(t *testing.T) {
	// A frame running down the right side of a 10x6 rectangle: local y points
	// back into the rectangle.
	f := Frame{Origin: Pt(10, 0), Dir: Pt(0, 1)}
	assert.Equal(t, Pt(-1, 0), f.Inward())
	assert.Equal(t, Pt(8, 3), f.Apply(Pt(3, 2)))

	c := Circle(3, 2, 1).Transform(f)
	b := c.Bounds()
	assert.InDelta(t, 7, b.X, 1e-3)
	assert.InDelta(t, 2, b.Y, 1e-3)
	assert.InDelta(t, 2, b.W, 1e-3)
}

func TestPathIsImmutable(t *testing.T) {
	base := Path{}.MoveTo(Pt(0, 0))
	a := base.LineTo(Pt(1, 0))
	b := base.LineTo(Pt(0, 1))
	assert.Equal(t, "M 0 0 L 1 0", a.String(3))
	assert.Equal(t, "M 0 0 L 0 1", b.String(3))
	assert.Equal(t, "M 0 0", base.String(3))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{1, 3, "1"},
		{1.23456, 3, "1.235"},
		{0.1 + 0.2, 3, "0.3"},
		{-0.0000001, 3, "0"},
		{-2.5, 1, "-2.5"},
		{106, 0, "106"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v, tt.prec), "FormatNumber(%v, %d)", tt.v, tt.prec)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}), "touching edges do not overlap")
	assert.False(t, a.Overlaps(Rect{X: 20, Y: 20, W: 1, H: 1}))
	assert.Equal(t, Rect{X: 0, Y: 0, W: 21, H: 21}, a.Union(Rect{X: 20, Y: 20, W: 1, H: 1}))
	assert.Equal(t, Rect{X: -1, Y: -1, W: 12, H: 12}, a.Grow(1))
}

func TestSelfIntersects(t *testing.T) {
	square := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	bowtie := []Point{{0, 0}, {1, 1}, {1, 0}, {0, 1}}
	assert.False(t, SelfIntersects(square))
	assert.True(t, SelfIntersects(bowtie))
	assert.InDelta(t, 1, SignedArea(square), 1e-12)
}
