// Package pipeline runs the generate → render pipeline for fingerbox.
//
// The CLI and the HTTP API both go through a [Runner], so caching, logging
// and error handling behave the same at every entry point.
//
// # Stages
//
//  1. Generate: validate box parameters and build the layout
//  2. Render: serialize the layout into cut files (SVG, DXF, JSON, PDF, PNG)
//     and assembly diagrams (DOT, assembly SVG)
//
// Generation is cheap and never cached. Rendering PDF, PNG and assembly
// diagrams shells out or runs Graphviz, so artifacts are cached by layout ID
// and render options. The parameters of every generated layout are stored
// too, so a layout can be rebuilt later from its ID alone.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Params:  params,
//	    Formats: []string{"svg", "dxf"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/cache"
	"github.com/matzehuels/fingerbox/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultStroke is the cut line colour.
	DefaultStroke = "#000000"

	// DefaultStrokeWidth is the cut line width in layout units.
	DefaultStrokeWidth = 0.1

	// DefaultUnits is the unit suffix written on SVG documents.
	DefaultUnits = "mm"

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatDXF      = "dxf"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
	FormatPNG      = "png"
	FormatDOT      = "dot"
	FormatAssembly = "assembly"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatDXF:      true,
	FormatJSON:     true,
	FormatPDF:      true,
	FormatPNG:      true,
	FormatDOT:      true,
	FormatAssembly: true,
}

// FormatExtensions maps formats to output file extensions.
var FormatExtensions = map[string]string{
	FormatSVG:      ".svg",
	FormatDXF:      ".dxf",
	FormatJSON:     ".json",
	FormatPDF:      ".pdf",
	FormatPNG:      ".png",
	FormatDOT:      ".dot",
	FormatAssembly: ".assembly.svg",
}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:      "image/svg+xml",
	FormatDXF:      "image/vnd.dxf",
	FormatJSON:     "application/json",
	FormatPDF:      "application/pdf",
	FormatPNG:      "image/png",
	FormatDOT:      "text/vnd.graphviz",
	FormatAssembly: "image/svg+xml",
}

// Formats returns the supported formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	Params box.Params `json:"-"`

	Formats     []string `json:"formats,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth float64  `json:"stroke_width,omitempty"`
	Unitless    bool     `json:"unitless,omitempty"` // write SVG width/height without "mm"
	Labels      bool     `json:"labels,omitempty"`   // engrave panel names
	Scale       float64  `json:"scale,omitempty"`    // PNG only
	Refresh     bool     `json:"refresh,omitempty"`  // ignore cached artifacts

	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Layout    *box.Layout
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Panels       int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // every artifact came from the cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return &errors.Error{
			Code:    errors.ErrCodeInvalidFormat,
			Message: fmt.Sprintf("invalid format: %q (must be one of: %s)", format, strings.Join(Formats(), ", ")),
			Field:   "format",
		}
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks render options and applies defaults. It is
// idempotent. Box parameters are validated during generation.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.StrokeWidth < 0 {
		return errors.Configuration("stroke_width", "stroke width must not be negative, got %g", o.StrokeWidth)
	}
	if o.Scale < 0 {
		return errors.Configuration("scale", "scale must not be negative, got %g", o.Scale)
	}
	o.Formats = dedupe(o.Formats)
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Stroke == "" {
		o.Stroke = DefaultStroke
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Units returns the SVG unit suffix.
func (o *Options) Units() string {
	if o.Unitless {
		return ""
	}
	return DefaultUnits
}

// ArtifactKeyOpts returns cache key options for one format. Options that do
// not affect a format are left out so they do not split its cache entries.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG, FormatPDF, FormatPNG:
		k.Stroke = o.Stroke
		k.Width = o.StrokeWidth
		k.Units = o.Units()
		k.Labels = o.Labels
		if format == FormatPNG {
			k.Scale = o.Scale
		}
	}
	return k
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
