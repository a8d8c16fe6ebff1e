package box

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/joint"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFingerWidth is used when Params.Finger is nil.
	DefaultFingerWidth = 10.0

	// DefaultGap is the space between panels on the sheet.
	DefaultGap = 5.0

	// DefaultMargin is the space between the outermost panels and the
	// viewBox boundary.
	DefaultMargin = 10.0

	// DefaultPanelsPerRow is the number of panels placed before the packer
	// starts a new row.
	DefaultPanelsPerRow = 3

	// DefaultPrecision is the number of decimal places in path data.
	DefaultPrecision = 3

	// MinTrayHeight is the lowest wall a tray is built with.
	MinTrayHeight = 20.0

	// MaxAngle bounds the slope of an angled box, in degrees (exclusive).
	MaxAngle = 60.0
)

// Type names a box topology.
type Type string

const (
	Basic  Type = "basic"
	Angled Type = "angled"
	Flex   Type = "flex"
	Tray   Type = "tray"
)

// Lid selects what closes the top of the box.
type Lid string

const (
	// LidNone leaves the box open: five panels.
	LidNone Lid = "none"
	// LidFlat adds a TOP jointed to all four walls.
	LidFlat Lid = "flat"
	// LidLiftOff adds an unjointed rounded-corner TOP that rests on the walls.
	LidLiftOff Lid = "lift-off"
)

// ValidLids is the set of supported lid kinds.
var ValidLids = map[Lid]bool{
	LidNone:    true,
	LidFlat:    true,
	LidLiftOff: true,
}

// Features toggles optional cutouts and joint styles.
type Features struct {
	HandleHole     bool `json:"handle_hole,omitempty" toml:"handle_hole"`
	VentPattern    bool `json:"vent_pattern,omitempty" toml:"vent_pattern"`
	FlexCuts       bool `json:"flex_cuts,omitempty" toml:"flex_cuts"`
	DovetailJoints bool `json:"dovetail_joints,omitempty" toml:"dovetail_joints"`
	ScrewHoles     bool `json:"screw_holes,omitempty" toml:"screw_holes"`
	Magnets        bool `json:"magnets,omitempty" toml:"magnets"`
}

// RenderHints control sheet layout and output formatting.
//
// A zero field selects its default: Gap 0 means DefaultGap and Margin 0 means
// DefaultMargin, so a gapless sheet cannot be requested. Use a small positive
// value for a tight one.
type RenderHints struct {
	Gap          float64 `json:"gap,omitempty" toml:"gap"`
	Margin       float64 `json:"margin,omitempty" toml:"margin"`
	SheetWidth   float64 `json:"sheet_width,omitempty" toml:"sheet_width"` // 0 = unlimited
	PanelsPerRow int     `json:"panels_per_row,omitempty" toml:"panels_per_row"`
	Precision    int     `json:"precision,omitempty" toml:"precision"`
}

// Params fully describes one box. All lengths share one unit.
type Params struct {
	Type         Type
	Width        float64 // inner size along FRONT/BACK
	Depth        float64 // inner size along LEFT/RIGHT
	Height       float64 // inner wall height
	Thickness    float64 // material thickness, also the finger depth
	Kerf         float64 // beam width removed by cutting
	Clearance    float64 // signed fit allowance; positive loosens
	CornerRadius float64 // rounding of unjointed panels
	Finger       joint.FingerSpec
	Lid          Lid
	Angle        float64 // slope in degrees, angled boxes only
	Features     Features
	Render       RenderHints
}

// WithDefaults returns a copy of p with empty fields set to their defaults.
// Zero render hints count as empty, see RenderHints.
func (p Params) WithDefaults() Params {
	if p.Type == "" {
		p.Type = Basic
	}
	if p.Lid == "" {
		p.Lid = LidNone
	}
	if p.Finger == nil {
		p.Finger = joint.ByWidth{Width: DefaultFingerWidth}
	}
	if p.Render.Gap == 0 {
		p.Render.Gap = DefaultGap
	}
	if p.Render.Margin == 0 {
		p.Render.Margin = DefaultMargin
	}
	if p.Render.PanelsPerRow == 0 {
		p.Render.PanelsPerRow = DefaultPanelsPerRow
	}
	if p.Render.Precision == 0 {
		p.Render.Precision = DefaultPrecision
	}
	return p
}

// Delta returns the tolerance offset shared by every edge of the box.
func (p Params) Delta() float64 {
	return joint.Delta(p.Thickness, p.Kerf, p.Clearance)
}

// HasTop reports whether the box gets a TOP panel.
func (p Params) HasTop() bool {
	return p.Type != Tray && p.Lid != LidNone
}

// Panels affected by each dimension, for error attribution.
var (
	widthPanels     = []string{Bottom, Front, Back}
	depthPanels     = []string{Bottom, Left, Right}
	heightPanels    = []string{Front, Back, Left, Right}
	thicknessPanels = []string{Bottom, Front, Back, Left, Right}
)

func withTop(panels []string, p Params) []string {
	if !p.HasTop() {
		return panels
	}
	return append(append([]string(nil), panels...), Top)
}

// Validate checks p for values no builder can work with. It runs before any
// geometry is produced; edge-level feasibility (finger counts, tolerance
// offsets) is checked by the builders and attributed to the panel side that
// fails.
func (p Params) Validate() error {
	if err := errors.ValidatePositive("width", p.Width, withTop(widthPanels, p)...); err != nil {
		return err
	}
	if err := errors.ValidatePositive("depth", p.Depth, withTop(depthPanels, p)...); err != nil {
		return err
	}
	if err := errors.ValidatePositive("height", p.Height, heightPanels...); err != nil {
		return err
	}
	if err := errors.ValidatePositive("thickness", p.Thickness, withTop(thicknessPanels, p)...); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("kerf", p.Kerf); err != nil {
		return err
	}
	if err := errors.ValidateFinite("clearance", p.Clearance); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("corner_radius", p.CornerRadius); err != nil {
		return err
	}
	if !ValidLids[p.Lid] {
		return errors.Configuration("lid", "invalid lid %q (must be one of: none, flat, lift-off)", p.Lid)
	}
	if err := validateFinger(p.Finger); err != nil {
		return err
	}
	if p.Type == Angled {
		if err := errors.ValidateRange("angle", p.Angle, 0, MaxAngle, Front, Back, Left, Right); err != nil {
			return err
		}
	}
	if p.Type == Flex && p.Features.DovetailJoints {
		return errors.Configuration("features.dovetail_joints", "dovetail joints cannot be combined with flex hinges")
	}
	if err := errors.ValidateNonNegative("render.gap", p.Render.Gap); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("render.margin", p.Render.Margin); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("render.sheet_width", p.Render.SheetWidth); err != nil {
		return err
	}
	if p.Render.PanelsPerRow < 0 {
		return errors.Configuration("render.panels_per_row", "panels per row must be non-negative, got %d", p.Render.PanelsPerRow)
	}
	if p.Render.Precision < 0 || p.Render.Precision > 10 {
		return errors.Configuration("render.precision", "precision must be between 0 and 10, got %d", p.Render.Precision)
	}
	return nil
}

func validateFinger(spec joint.FingerSpec) error {
	switch s := spec.(type) {
	case joint.ByWidth:
		return errors.ValidatePositive("finger.width", s.Width)
	case joint.ByCount:
		if s.Count < 1 {
			return errors.InvalidDimension("finger.count", nil, "finger count must be at least 1, got %d", s.Count)
		}
		return nil
	case nil:
		return errors.Configuration("finger", "finger spec is required")
	default:
		return errors.Configuration("finger", "unsupported finger spec %T", spec)
	}
}

// Canonical renders p as a stable string: equal params give equal strings.
// It identifies layouts in caches and names them.
func (p Params) Canonical() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	var finger string
	switch s := p.Finger.(type) {
	case joint.ByWidth:
		finger = "width:" + f(s.Width)
	case joint.ByCount:
		finger = "count:" + strconv.Itoa(s.Count)
	default:
		finger = fmt.Sprintf("%T", s)
	}

	fs := p.Features
	flags := []bool{fs.HandleHole, fs.VentPattern, fs.FlexCuts, fs.DovetailJoints, fs.ScrewHoles, fs.Magnets}
	var bits strings.Builder
	for _, b := range flags {
		if b {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}

	r := p.Render
	return strings.Join([]string{
		string(p.Type),
		f(p.Width), f(p.Depth), f(p.Height), f(p.Thickness),
		f(p.Kerf), f(p.Clearance), f(p.CornerRadius),
		finger, string(p.Lid), f(p.Angle), bits.String(),
		f(r.Gap), f(r.Margin), f(r.SheetWidth), strconv.Itoa(r.PanelsPerRow), strconv.Itoa(r.Precision),
	}, "|")
}

// slope returns tan(angle) for an angle in degrees.
func slope(deg float64) float64 {
	return math.Tan(deg * math.Pi / 180)
}
