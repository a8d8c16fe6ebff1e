package box

import (
	"github.com/matzehuels/fingerbox/pkg/edge"
	"github.com/matzehuels/fingerbox/pkg/joint"
)

// rectOptions is what the vertical-walled topologies change about the basic
// box.
type rectOptions struct {
	height float64 // wall height actually built
	// wallJoint overrides the style of the FRONT/BACK vertical sides. Its
	// profile must match the box's joint style.
	wallJoint string
	flexBand  bool // cut a live hinge across FRONT and BACK
	noTop     bool
}

// buildBasic is the plain rectangular box.
func buildBasic(b *builder) ([]Panel, error) {
	return b.rectangular(rectOptions{
		height:   b.params.Height,
		flexBand: b.params.Features.FlexCuts,
	})
}

// buildFlex adds live hinges to FRONT and BACK: a band of slits across the
// middle of each wall and slits along both vertical joints.
func buildFlex(b *builder) ([]Panel, error) {
	return b.rectangular(rectOptions{
		height:    b.params.Height,
		wallJoint: edge.Flex,
		flexBand:  true,
	})
}

// buildTray is an open box with walls at least MinTrayHeight tall.
func buildTray(b *builder) ([]Panel, error) {
	return b.rectangular(rectOptions{
		height:   max(b.params.Height, MinTrayHeight),
		flexBand: b.params.Features.FlexCuts,
		noTop:    true,
	})
}

// rectangular builds a box with vertical walls.
//
// BOTTOM is female on all sides and receives a male tab run from the foot of
// every wall. At the vertical corners FRONT and BACK are female and LEFT and
// RIGHT male. With a flat lid the wall tops are male and TOP is female on all
// sides, mirroring BOTTOM.
func (b *builder) rectangular(opts rectOptions) ([]Panel, error) {
	p := b.params
	w, d, h := p.Width, p.Depth, opts.height
	t := p.Thickness
	flatLid := p.Lid == LidFlat && !opts.noTop

	female := b.jointed(joint.Female)
	male := b.jointed(joint.Male)
	wallTop := plainSide()
	if flatLid {
		wallTop = male
	}
	frontBackSide := female
	if opts.wallJoint != "" {
		frontBackSide = side{style: opts.wallJoint, role: joint.Female}
	}

	face := wallFace{w: w + 2*t, h: h + 2*t, topAt: flatTop}
	sideDepth := 0.0
	if opts.wallJoint == edge.Flex {
		sideDepth = edge.SlitReach(t)
	}
	specs := []panelSpec{
		{
			name: Bottom, nominalW: w, nominalH: d,
			sides: [4]side{female, female, female, female},
		},
		{
			name: Front, nominalW: w, nominalH: h,
			sides:   [4]side{wallTop, frontBackSide, male, frontBackSide},
			cutouts: b.wallCutouts(Front, face, opts.flexBand, sideDepth),
		},
		{
			name: Back, nominalW: w, nominalH: h,
			sides:   [4]side{wallTop, frontBackSide, male, frontBackSide},
			cutouts: b.wallCutouts(Back, face, opts.flexBand, sideDepth),
		},
		{
			name: Left, nominalW: d, nominalH: h,
			sides: [4]side{wallTop, male, male, male},
		},
		{
			name: Right, nominalW: d, nominalH: h,
			sides: [4]side{wallTop, male, male, male},
		},
	}
	if flatLid {
		specs = append(specs, panelSpec{
			name: Top, nominalW: w, nominalH: d,
			sides:   [4]side{female, female, female, female},
			cutouts: b.topCutouts(w+2*t, d+2*t),
		})
	}

	panels := make([]Panel, 0, len(specs)+1)
	for _, s := range specs {
		pn, err := b.assemble(s)
		if err != nil {
			return nil, err
		}
		panels = append(panels, pn)
	}
	if p.Lid == LidLiftOff && !opts.noTop {
		panels = append(panels, b.liftOffLid(w, d, b.topCutouts(w+2*t, d+2*t)))
	}
	return panels, nil
}
