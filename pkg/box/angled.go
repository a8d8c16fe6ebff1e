package box

import (
	"math"

	"github.com/matzehuels/fingerbox/pkg/geom"
	"github.com/matzehuels/fingerbox/pkg/joint"
)

// buildAngled is a box whose top is a plane sloping in two directions.
//
// Across the width the top drops by tan(angle)*width from LEFT to RIGHT,
// capped at half the wall height, so FRONT and BACK are quadrilaterals and
// RIGHT is built on the lower height. From front to back the side walls are
// trapezoids whose top drops by tan(angle)*height, capped at half the lower
// wall, and BACK stands that much lower than FRONT. Every vertical corner is
// finger jointed over equal lengths as in the basic box; the sloped tops are
// plain and any lid rests on them unjointed.
func buildAngled(b *builder) ([]Panel, error) {
	p := b.params
	w, d, h, t := p.Width, p.Depth, p.Height, p.Thickness
	k := slope(p.Angle)

	drop := math.Min(k*w, h/2)
	lowH := h - drop
	lean := math.Min(k*h, lowH/2)
	backH := h - lean
	wf, df := w+2*t, d+2*t

	female := b.jointed(joint.Female)
	male := b.jointed(joint.Male)
	plain := plainSide()
	band := p.Features.FlexCuts

	// FRONT is seen from outside with LEFT on its left, so its top falls to
	// the right. BACK is seen from outside too and falls to the left.
	frontH := h + 2*t
	frontShape := []geom.Point{geom.Pt(0, 0), geom.Pt(wf, drop), geom.Pt(wf, frontH), geom.Pt(0, frontH)}
	frontFace := wallFace{w: wf, h: frontH, topAt: func(x float64) float64 { return drop * x / wf }}

	backFull := backH + 2*t
	backShape := []geom.Point{geom.Pt(0, drop), geom.Pt(wf, 0), geom.Pt(wf, backFull), geom.Pt(0, backFull)}
	backFace := wallFace{w: wf, h: backFull, topAt: func(x float64) float64 { return drop * (1 - x/wf) }}

	// Side walls have their front edge on the left.
	sideShape := func(nominalH float64) []geom.Point {
		full := nominalH + 2*t
		return []geom.Point{geom.Pt(0, 0), geom.Pt(df, lean), geom.Pt(df, full), geom.Pt(0, full)}
	}

	specs := []panelSpec{
		{
			name: Bottom, nominalW: w, nominalH: d,
			sides: [4]side{female, female, female, female},
		},
		{
			name: Front, nominalW: w, nominalH: h, shape: frontShape,
			sides:   [4]side{plain, female, male, female},
			cutouts: b.wallCutouts(Front, frontFace, band, 0),
		},
		{
			name: Back, nominalW: w, nominalH: backH, shape: backShape,
			sides:   [4]side{plain, female, male, female},
			cutouts: b.wallCutouts(Back, backFace, band, 0),
		},
		{
			name: Left, nominalW: d, nominalH: h, shape: sideShape(h),
			sides: [4]side{plain, male, male, male},
		},
		{
			name: Right, nominalW: d, nominalH: lowH, shape: sideShape(lowH),
			sides: [4]side{plain, male, male, male},
		},
	}

	panels := make([]Panel, 0, len(specs)+1)
	for _, s := range specs {
		pn, err := b.assemble(s)
		if err != nil {
			return nil, err
		}
		panels = append(panels, pn)
	}
	if p.HasTop() {
		panels = append(panels, b.liftOffLid(w, d, b.topCutouts(wf, df)))
	}
	return panels, nil
}
