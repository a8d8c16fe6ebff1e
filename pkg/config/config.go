// Package config reads and writes box parameter files.
//
// Parameter files are TOML:
//
//	type = "basic"
//	width = 100
//	depth = 80
//	height = 60
//	thickness = 3
//	kerf = 0.15
//	clearance = 0.05
//	lid = "flat"
//
//	[finger]
//	mode = "width"
//	width = 10
//
//	[features]
//	handle_hole = true
//
//	[render]
//	gap = 5
//	margin = 10
//
// Unknown keys are rejected so a typo never silently falls back to a
// default. The same [File] shape, with the same field names, is accepted as
// JSON by the HTTP API.
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/joint"
)

// Finger modes.
const (
	FingerModeWidth = "width"
	FingerModeCount = "count"
)

// File is the serialized form of box.Params.
type File struct {
	Type         string          `toml:"type" json:"type,omitempty"`
	Width        float64         `toml:"width" json:"width"`
	Depth        float64         `toml:"depth" json:"depth"`
	Height       float64         `toml:"height" json:"height"`
	Thickness    float64         `toml:"thickness" json:"thickness"`
	Kerf         float64         `toml:"kerf" json:"kerf"`
	Clearance    float64         `toml:"clearance" json:"clearance"`
	CornerRadius float64         `toml:"corner_radius" json:"corner_radius"`
	Lid          string          `toml:"lid" json:"lid,omitempty"`
	Angle        float64         `toml:"angle" json:"angle"`
	Finger       Finger          `toml:"finger" json:"finger"`
	Features     box.Features    `toml:"features" json:"features"`
	Render       box.RenderHints `toml:"render" json:"render"`
}

// Finger is the serialized finger spec. Mode selects which of Width and Count
// is used; an empty mode infers it from whichever is set.
type Finger struct {
	Mode  string  `toml:"mode" json:"mode,omitempty"`
	Width float64 `toml:"width,omitempty" json:"width,omitempty"`
	Count int     `toml:"count,omitempty" json:"count,omitempty"`
}

// Load reads a parameter file from disk.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeConfiguration, err, "read parameter file %s", path)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a TOML parameter file.
func Decode(r io.Reader) (File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeConfiguration, err, "parse parameter file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, &errors.Error{
			Code:    errors.ErrCodeConfiguration,
			Message: "unknown keys: " + strings.Join(keys, ", "),
			Field:   keys[0],
		}
	}
	return f, nil
}

// Encode writes f as TOML.
func Encode(w io.Writer, f File) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode parameter file")
	}
	return nil
}

// Params converts f into box parameters. Values are not validated beyond
// what the conversion needs; generation validates the rest.
func (f File) Params() (box.Params, error) {
	spec, err := f.Finger.Spec()
	if err != nil {
		return box.Params{}, err
	}
	return box.Params{
		Type:         box.Type(f.Type),
		Width:        f.Width,
		Depth:        f.Depth,
		Height:       f.Height,
		Thickness:    f.Thickness,
		Kerf:         f.Kerf,
		Clearance:    f.Clearance,
		CornerRadius: f.CornerRadius,
		Finger:       spec,
		Lid:          box.Lid(f.Lid),
		Angle:        f.Angle,
		Features:     f.Features,
		Render:       f.Render,
	}, nil
}

// Spec converts the serialized finger spec. A spec with neither width nor
// count returns nil so the box default applies.
func (f Finger) Spec() (joint.FingerSpec, error) {
	switch f.Mode {
	case FingerModeWidth:
		return joint.ByWidth{Width: f.Width}, nil
	case FingerModeCount:
		return joint.ByCount{Count: f.Count}, nil
	case "":
		switch {
		case f.Width != 0 && f.Count != 0:
			return nil, errors.Configuration("finger", "set either finger width or finger count, not both")
		case f.Width != 0:
			return joint.ByWidth{Width: f.Width}, nil
		case f.Count != 0:
			return joint.ByCount{Count: f.Count}, nil
		default:
			return nil, nil
		}
	default:
		return nil, errors.Configuration("finger.mode", "invalid finger mode %q (must be one of: width, count)", f.Mode)
	}
}

// FromParams is the inverse of File.Params.
func FromParams(p box.Params) File {
	var fg Finger
	switch s := p.Finger.(type) {
	case joint.ByWidth:
		fg = Finger{Mode: FingerModeWidth, Width: s.Width}
	case joint.ByCount:
		fg = Finger{Mode: FingerModeCount, Count: s.Count}
	}
	return File{
		Type:         string(p.Type),
		Width:        p.Width,
		Depth:        p.Depth,
		Height:       p.Height,
		Thickness:    p.Thickness,
		Kerf:         p.Kerf,
		Clearance:    p.Clearance,
		CornerRadius: p.CornerRadius,
		Lid:          string(p.Lid),
		Angle:        p.Angle,
		Finger:       fg,
		Features:     p.Features,
		Render:       p.Render,
	}
}
