package joint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fingerbox/pkg/errors"
)

func TestDivide(t *testing.T) {
	tests := []struct {
		name    string
		length  float64
		spec    FingerSpec
		want    int
		wantErr errors.Code
	}{
		{"exact even bumps to odd", 100, ByWidth{Width: 10}, 11, ""},
		{"fractional floors", 100, ByWidth{Width: 9}, 11, ""},
		{"floor even bumps", 100, ByWidth{Width: 12}, 9, ""},
		{"odd kept", 90, ByWidth{Width: 10}, 9, ""},
		{"just below half", 100, ByWidth{Width: 49}, 3, ""},
		{"count", 100, ByCount{Count: 3}, 7, ""},
		{"half length", 100, ByWidth{Width: 50}, 0, errors.ErrCodeInvalidDimension},
		{"zero width", 100, ByWidth{Width: 0}, 0, errors.ErrCodeInvalidDimension},
		{"zero count", 100, ByCount{Count: 0}, 0, errors.ErrCodeInvalidDimension},
		{"too many", 100, ByWidth{Width: 0.01}, 0, errors.ErrCodeInvalidDimension},
		{"zero length", 0, ByWidth{Width: 1}, 0, errors.ErrCodeInvalidDimension},
		{"nil spec", 100, nil, 0, errors.ErrCodeConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Divide(tt.length, tt.spec)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Segments)
			assert.Equal(t, 1, l.Segments%2, "segment count must be odd")
			assert.Equal(t, (tt.want-1)/2, l.Fingers)
			assert.InDelta(t, tt.length/float64(tt.want), l.Width, 1e-12)
		})
	}
}

func TestDivideFieldAttribution(t *testing.T) {
	_, err := Divide(100, ByWidth{Width: 60})
	assert.Equal(t, "finger.width", errors.FieldOf(err))
	assert.Equal(t, "finger.width", SpecField(ByWidth{}))
	assert.Equal(t, "finger.count", SpecField(ByCount{}))
}

func TestDelta(t *testing.T) {
	assert.InDelta(t, 0.1, Delta(3, 0.2, 0), 1e-12)
	assert.InDelta(t, 0, Delta(3, 0.2, 0.1), 1e-12)
	assert.InDelta(t, -0.1, Delta(6, 0.2, 0.1), 1e-12, "clearance scales above 3 units of thickness")
	assert.InDelta(t, -0.1, Delta(1, 0, 0.1), 1e-12, "clearance never scales below 1")
}

func TestDeltaField(t *testing.T) {
	assert.Equal(t, "kerf", DeltaField(3, 0.2, 0.05))
	assert.Equal(t, "kerf", DeltaField(3, 8, 0))
	assert.Equal(t, "clearance", DeltaField(3, 0.2, -3))
	assert.Equal(t, "clearance", DeltaField(6, 0.2, 0.08), "clearance scales with thickness")

	_, err := FingerEdge(100, ByWidth{Width: 10}, Male, Geometry{Thickness: 3, Delta: 3})
	assert.Equal(t, "kerf", errors.FieldOf(err), "kerf when unset")

	g := Geometry{Thickness: 3, Delta: 3, DeltaField: DeltaField(3, 0, -3)}
	_, err = FingerEdge(100, ByWidth{Width: 10}, Female, g)
	assert.Equal(t, "clearance", errors.FieldOf(err))
}

func TestFingerEdgeShape(t *testing.T) {
	p, err := FingerEdge(100, ByWidth{Width: 10}, Male, Geometry{Thickness: 3})
	require.NoError(t, err)

	assert.Equal(t, 11, p.Layout.Segments)
	assert.Len(t, p.Points, 2*11)
	assert.Equal(t, 0.0, p.Start())
	assert.Equal(t, p.Start(), p.End())
	assert.Equal(t, 0.0, p.Points[0].X)
	assert.Equal(t, 100.0, p.Points[len(p.Points)-1].X)

	for _, pt := range p.Points {
		assert.True(t, pt.Y == 0 || pt.Y == 3, "vertex %v off the two depth levels", pt)
	}
	assert.Len(t, p.Tabs(), 6, "male edge of 11 segments has 6 tabs")

	f, err := FingerEdge(100, ByWidth{Width: 10}, Female, Geometry{Thickness: 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, f.Start())
	assert.Equal(t, 3.0, f.End())
	assert.Len(t, f.Tabs(), 5)
}

func TestFingerEdgeComplementary(t *testing.T) {
	const thickness = 4.0
	for _, spec := range []FingerSpec{ByWidth{Width: 10}, ByWidth{Width: 7}, ByCount{Count: 2}} {
		for _, flare := range []float64{0, 0.5} {
			m, err := DovetailEdge(100, spec, Male, Geometry{Thickness: thickness}, flare)
			require.NoError(t, err)
			f, err := DovetailEdge(100, spec, Female, Geometry{Thickness: thickness}, flare)
			require.NoError(t, err)

			require.Len(t, f.Points, len(m.Points))
			for i := range m.Points {
				assert.InDelta(t, m.Points[i].X, f.Points[i].X, 1e-9, "spec %#v flare %v vertex %d", spec, flare, i)
				assert.InDelta(t, thickness-m.Points[i].Y, f.Points[i].Y, 1e-9, "spec %#v flare %v vertex %d", spec, flare, i)
			}
		}
	}
}

func TestFingerEdgeComplementarySweep(t *testing.T) {
	const thickness = 1.5
	lengths := []float64{20.0001, 37.3, 64.25, 99.99, 100, 101.7, 257.123}
	specs := []FingerSpec{ByWidth{Width: 10}, ByWidth{Width: 6.5}, ByCount{Count: 1}, ByCount{Count: 4}}
	deltas := []float64{-0.3, -0.05, 0, 0.075, 0.3}

	for _, length := range lengths {
		for _, spec := range specs {
			for _, delta := range deltas {
				g := Geometry{Thickness: thickness, Delta: delta}
				m, err := FingerEdge(length, spec, Male, g)
				require.NoError(t, err, "length %v spec %#v delta %v", length, spec, delta)
				f, err := FingerEdge(length, spec, Female, g)
				require.NoError(t, err, "length %v spec %#v delta %v", length, spec, delta)

				n := m.Layout.Segments
				assert.Equal(t, 1, n%2, "odd segment count")
				assert.Equal(t, 0.0, m.Start())
				assert.Equal(t, m.Start(), m.End())
				assert.Equal(t, thickness, f.Start())
				assert.Equal(t, f.Start(), f.End())

				require.Len(t, m.Points, 2*n)
				require.Len(t, f.Points, 2*n)
				assert.Equal(t, length, m.Points[2*n-1].X)
				assert.Equal(t, length, f.Points[2*n-1].X)

				for i := 1; i < 2*n-1; i++ {
					nominal := float64((i+1)/2) * m.Layout.Width
					// Both sides of a joint move by delta from the shared
					// nominal transition, in opposite directions.
					assert.InDelta(t, 2*nominal, m.Points[i].X+f.Points[i].X, 1e-9, "length %v spec %#v delta %v vertex %d", length, spec, delta, i)
					assert.InDelta(t, math.Abs(delta), math.Abs(m.Points[i].X-nominal), 1e-9, "vertex %d", i)
					assert.InDelta(t, thickness-m.Points[i].Y, f.Points[i].Y, 1e-12)
				}

				// Reversed, every profile is itself: mating sides may run in
				// opposite directions.
				for _, p := range []Profile{m, f} {
					last := len(p.Points) - 1
					for i := range p.Points {
						assert.InDelta(t, length, p.Points[i].X+p.Points[last-i].X, 1e-9)
						assert.Equal(t, p.Points[i].Y, p.Points[last-i].Y)
					}
				}
			}
		}
	}
}

func TestFingerEdgeDeltaWidensMaterial(t *testing.T) {
	spec := ByWidth{Width: 10}
	seg := 100.0 / 11

	widths := func(role Role, delta float64) [][2]float64 {
		p, err := FingerEdge(100, spec, role, Geometry{Thickness: 3, Delta: delta})
		require.NoError(t, err)
		return p.Tabs()
	}

	for _, delta := range []float64{-0.2, 0, 0.1, 0.3} {
		tabs := widths(Male, delta)
		assert.InDelta(t, seg+delta, tabs[0][1]-tabs[0][0], 1e-9, "end tab only grows on its inner side")
		assert.InDelta(t, seg+2*delta, tabs[1][1]-tabs[1][0], 1e-9)

		// Female fingers grow too, so the notches between them shrink.
		ftabs := widths(Female, delta)
		assert.InDelta(t, seg+2*delta, ftabs[0][1]-ftabs[0][0], 1e-9)
		notch := ftabs[1][0] - ftabs[0][1]
		assert.InDelta(t, seg-2*delta, notch, 1e-9)
	}

	loose := widths(Male, -0.1)
	tight := widths(Male, 0.1)
	assert.Greater(t, tight[2][1]-tight[2][0], loose[2][1]-loose[2][0])
}

func TestFingerEdgeRejectsOversizedDelta(t *testing.T) {
	_, err := FingerEdge(100, ByWidth{Width: 10}, Male, Geometry{Thickness: 3, Delta: 3})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidDimension, errors.GetCode(err))

	_, err = FingerEdge(100, ByWidth{Width: 10}, Male, Geometry{Thickness: 0})
	assert.Equal(t, "thickness", errors.FieldOf(err))

	_, err = FingerEdge(100, ByWidth{Width: 10}, Role(0), Geometry{Thickness: 3})
	assert.Equal(t, errors.ErrCodeConfiguration, errors.GetCode(err))

	_, err = DovetailEdge(100, ByWidth{Width: 10}, Male, Geometry{Thickness: 3}, -1)
	assert.Equal(t, errors.ErrCodeInvalidDimension, errors.GetCode(err))

	// 2 wide fingers cannot carry 3 thick material past the corner square.
	_, err = FingerEdge(100, ByWidth{Width: 2}, Male, Geometry{Thickness: 3})
	assert.Equal(t, "finger.width", errors.FieldOf(err))
}

func TestRole(t *testing.T) {
	assert.Equal(t, Female, Male.Complement())
	assert.Equal(t, Male, Female.Complement())
	assert.Equal(t, "male", Male.String())
	assert.Equal(t, "female", Female.String())
}
