package sink

import (
	"encoding/json"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/config"
	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/pack"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
	params bool
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// WithJSONParams embeds the parameters the layout was generated from, so the
// file can be regenerated later.
func WithJSONParams() JSONOption { return func(r *jsonRenderer) { r.params = true } }

// Output is the JSON document written by RenderJSON.
type Output struct {
	ID      string       `json:"id"`
	Type    string       `json:"type"`
	ViewBox pack.ViewBox `json:"view_box"`
	Panels  []Panel      `json:"panels"`
	Params  *config.File `json:"params,omitempty"`
}

// Panel is one panel in the JSON output. Path is SVG path data in
// panel-local coordinates.
type Panel struct {
	Name          string  `json:"name"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	NominalWidth  float64 `json:"nominal_width"`
	NominalHeight float64 `json:"nominal_height"`
	Path          string  `json:"path"`
}

// NewOutput converts a layout into its JSON shape.
func NewOutput(l *box.Layout, withParams bool) Output {
	prec := l.Params.Render.Precision
	if prec <= 0 {
		prec = box.DefaultPrecision
	}
	out := Output{
		ID:      l.ID.String(),
		Type:    string(l.Params.Type),
		ViewBox: l.ViewBox,
		Panels:  make([]Panel, len(l.Panels)),
	}
	for i, p := range l.Panels {
		out.Panels[i] = Panel{
			Name:          p.Name,
			X:             p.X,
			Y:             p.Y,
			Width:         p.W,
			Height:        p.H,
			NominalWidth:  p.NominalW,
			NominalHeight: p.NominalH,
			Path:          p.Path.String(prec),
		}
	}
	if withParams {
		f := config.FromParams(l.Params)
		out.Params = &f
	}
	return out
}

// RenderJSON renders l as JSON.
func RenderJSON(l *box.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := NewOutput(l, r.params)

	var (
		data []byte
		err  error
	)
	if r.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout json")
	}
	return data, nil
}
