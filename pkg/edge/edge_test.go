package edge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/joint"
)

func TestBuiltinNames(t *testing.T) {
	r := Builtin()
	assert.Equal(t, []string{"dovetail", "finger", "flex", "plain", "screw"}, r.Names())
	assert.True(t, r.Has(Finger))
	assert.False(t, r.Has("zigzag"))
}

func TestLookupUnknown(t *testing.T) {
	_, err := Builtin().Lookup("zigzag")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfiguration, errors.GetCode(err))
	assert.Equal(t, "edge_style", errors.FieldOf(err))
	assert.Contains(t, err.Error(), "zigzag")
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	s := StyleFunc(plain)

	require.NoError(t, r.Register("custom", s))
	assert.Equal(t, []string{"custom"}, r.Names())

	err := r.Register("custom", s)
	assert.Equal(t, errors.ErrCodeConfiguration, errors.GetCode(err), "duplicates are rejected")

	assert.Error(t, r.Register("", s))
	assert.Error(t, r.Register("nil", nil))

	got, err := r.Lookup("custom")
	require.NoError(t, err)
	f, err := got.Generate(10, nil, joint.Male, Geometry{Thickness: 3})
	require.NoError(t, err)
	assert.Len(t, f.Outline, 2)
}

func TestJointedStylesAreComplementary(t *testing.T) {
	const thick = 3.0
	g := Geometry{Thickness: thick}
	spec := joint.ByWidth{Width: 10}

	for _, name := range []string{Finger, Flex, Dovetail, Screw} {
		t.Run(name, func(t *testing.T) {
			s, err := Builtin().Lookup(name)
			require.NoError(t, err)

			m, err := s.Generate(106, spec, joint.Male, g)
			require.NoError(t, err)
			f, err := s.Generate(106, spec, joint.Female, g)
			require.NoError(t, err)

			require.Len(t, f.Outline, len(m.Outline))
			for i := range m.Outline {
				assert.InDelta(t, m.Outline[i].X, f.Outline[i].X, 1e-9)
				assert.InDelta(t, thick-m.Outline[i].Y, f.Outline[i].Y, 1e-9)
			}
			assert.Equal(t, 0.0, m.StartDepth())
			assert.Equal(t, thick, f.EndDepth())
		})
	}
}

// Dovetail is left out: its flare shrinks as |delta| grows.
func TestJointedStylesShiftSymmetrically(t *testing.T) {
	const thick = 3.0
	for _, name := range []string{Finger, Flex, Screw} {
		s, err := Builtin().Lookup(name)
		require.NoError(t, err)
		for _, length := range []float64{53.7, 106, 187.35} {
			for _, spec := range []joint.FingerSpec{joint.ByWidth{Width: 10}, joint.ByCount{Count: 3}} {
				base, err := s.Generate(length, spec, joint.Male, Geometry{Thickness: thick})
				require.NoError(t, err)
				for _, delta := range []float64{-0.2, 0.15} {
					g := Geometry{Thickness: thick, Delta: delta}
					m, err := s.Generate(length, spec, joint.Male, g)
					require.NoError(t, err, "%s %v %#v %v", name, length, spec, delta)
					f, err := s.Generate(length, spec, joint.Female, g)
					require.NoError(t, err, "%s %v %#v %v", name, length, spec, delta)

					require.Len(t, m.Outline, len(base.Outline))
					require.Len(t, f.Outline, len(base.Outline))
					for i := range base.Outline {
						assert.InDelta(t, 2*base.Outline[i].X, m.Outline[i].X+f.Outline[i].X, 1e-9,
							"%s length %v spec %#v delta %v vertex %d", name, length, spec, delta, i)
						assert.InDelta(t, thick-m.Outline[i].Y, f.Outline[i].Y, 1e-12)
					}
				}
			}
		}
	}
}

func TestFlexSlits(t *testing.T) {
	s, err := Builtin().Lookup(Flex)
	require.NoError(t, err)

	f, err := s.Generate(100, joint.ByWidth{Width: 10}, joint.Male, Geometry{Thickness: 3})
	require.NoError(t, err)
	// Slits every 6 units from x=6 to x=90, keeping 2t clear of both ends.
	require.Len(t, f.Cutouts, 15)
	for i, c := range f.Cutouts {
		sps := c.Flatten(0)
		require.Len(t, sps, 1)
		a, b := sps[0].Points[0], sps[0].Points[1]
		assert.InDelta(t, 6*float64(i+1), a.X, 1e-9)
		assert.Equal(t, a.X, b.X, "slits run perpendicular to the side")
		assert.InDelta(t, 6, a.Y, 1e-9)
		assert.InDelta(t, 18, b.Y, 1e-9)
	}

	shallow, err := s.Generate(100, joint.ByWidth{Width: 10}, joint.Male, Geometry{Thickness: 3, Reach: 12})
	require.NoError(t, err)
	sp := shallow.Cutouts[0].Flatten(0)[0]
	assert.InDelta(t, 9, sp.Points[1].Y, 1e-9, "slits stop a thickness short of reach")

	none, err := s.Generate(100, joint.ByWidth{Width: 10}, joint.Male, Geometry{Thickness: 3, Reach: 8})
	require.NoError(t, err)
	assert.Empty(t, none.Cutouts)
}

func TestScrewHoleOnOwningSide(t *testing.T) {
	s, err := Builtin().Lookup(Screw)
	require.NoError(t, err)

	// 100/20 = 5 segments: the centre segment 2 is a male tab.
	m, err := s.Generate(100, joint.ByWidth{Width: 20}, joint.Male, Geometry{Thickness: 3})
	require.NoError(t, err)
	require.Len(t, m.Cutouts, 1)
	b := m.Cutouts[0].Bounds()
	assert.InDelta(t, 50, b.X+b.W/2, 1e-3)
	assert.InDelta(t, 1.5, b.Y+b.H/2, 1e-3)

	f, err := s.Generate(100, joint.ByWidth{Width: 20}, joint.Female, Geometry{Thickness: 3})
	require.NoError(t, err)
	assert.Empty(t, f.Cutouts)
}

func TestDovetailFlares(t *testing.T) {
	s, err := Builtin().Lookup(Dovetail)
	require.NoError(t, err)
	f, err := s.Generate(100, joint.ByWidth{Width: 10}, joint.Male, Geometry{Thickness: 3})
	require.NoError(t, err)

	// The first transition leaves the tab at its tip and returns at its
	// root, so the two vertices differ in x.
	assert.Greater(t, f.Outline[1].X, f.Outline[2].X)
}

func TestStyleErrors(t *testing.T) {
	for _, name := range []string{Finger, Flex, Dovetail, Screw} {
		s, err := Builtin().Lookup(name)
		require.NoError(t, err)
		_, err = s.Generate(15, joint.ByWidth{Width: 10}, joint.Male, Geometry{Thickness: 3})
		assert.Equal(t, errors.ErrCodeInvalidDimension, errors.GetCode(err), name)
	}
	_, err := StyleFunc(plain).Generate(0, nil, joint.Male, Geometry{})
	assert.Equal(t, errors.ErrCodeInvalidDimension, errors.GetCode(err))
}
