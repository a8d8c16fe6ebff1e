package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/config"
	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/geom"
	"github.com/matzehuels/fingerbox/pkg/pipeline"
)

// stdoutPath selects standard output for a single-format run.
const stdoutPath = "-"

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	config  string
	output  string
	formats string
	cache   string
	noCache bool
	pick    bool

	params      config.File // box flags, applied over the file when set
	fingerWidth float64
	fingerCount int

	render pipeline.Options
}

// defaultParams is used when no parameter file is given. Dimensions have no
// default and must be set.
func defaultParams() config.File {
	return config.File{
		Type:      string(box.Basic),
		Thickness: 3,
		Kerf:      0.15,
		Clearance: 0.05,
		Lid:       string(box.LidNone),
	}
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	o := &generateOpts{params: defaultParams()}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the panels of a box",
		Long: `Generate the panels of a laser-cut box and write them to disk.

Parameters come from flags, from a TOML file (--config), or both; flags
override the file. Several formats can be written at once:

  fingerbox generate --width 100 --depth 80 --height 60 --lid flat -f svg,dxf
  fingerbox generate -c shoebox.toml --kerf 0.2 -o cut/shoebox

Rendered files are cached, so regenerating an unchanged box is instant.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), o, cmd.Flags().Changed)
		},
	}

	def := o.params
	fs := cmd.Flags()

	// Input and output
	fs.StringVarP(&o.config, "config", "c", "", "TOML parameter file")
	fs.StringVarP(&o.output, "output", "o", "", "output file (single format) or base path; - for stdout")
	fs.StringVarP(&o.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.Formats(), ", ")+" (comma-separated, default svg)")
	fs.StringVar(&o.cache, "cache", "", "cache directory or redis://, mongodb:// URL (default $"+cacheEnv+" or ~/.cache/"+appName+")")
	fs.BoolVar(&o.noCache, "no-cache", false, "disable caching")
	fs.BoolVar(&o.render.Refresh, "refresh", false, "re-render even when cached")
	fs.BoolVar(&o.pick, "pick", false, "choose the box type interactively")

	// Box
	fs.StringVarP(&o.params.Type, "type", "t", def.Type, "box type")
	fs.Float64Var(&o.params.Width, "width", 0, "inner width")
	fs.Float64Var(&o.params.Depth, "depth", 0, "inner depth")
	fs.Float64Var(&o.params.Height, "height", 0, "inner height")
	fs.Float64Var(&o.params.Thickness, "thickness", def.Thickness, "material thickness")
	fs.Float64Var(&o.params.Kerf, "kerf", def.Kerf, "width of material removed by the beam")
	fs.Float64Var(&o.params.Clearance, "clearance", def.Clearance, "fit allowance (negative for a press fit)")
	fs.Float64Var(&o.params.CornerRadius, "corner-radius", 0, "corner rounding of unjointed panels")
	fs.StringVar(&o.params.Lid, "lid", def.Lid, "lid: none, flat, lift-off")
	fs.Float64Var(&o.params.Angle, "angle", 0, "top slope in degrees (angled boxes)")
	fs.Float64Var(&o.fingerWidth, "finger-width", box.DefaultFingerWidth, "target finger width")
	fs.IntVar(&o.fingerCount, "finger-count", 0, "fingers per edge (instead of --finger-width)")

	// Features
	fs.BoolVar(&o.params.Features.HandleHole, "handle", false, "cut a handle slot in FRONT and BACK")
	fs.BoolVar(&o.params.Features.VentPattern, "vents", false, "cut vent holes in the side walls")
	fs.BoolVar(&o.params.Features.FlexCuts, "flex-cuts", false, "living-hinge slits on the side walls")
	fs.BoolVar(&o.params.Features.DovetailJoints, "dovetail", false, "dovetail joints instead of fingers")
	fs.BoolVar(&o.params.Features.ScrewHoles, "screws", false, "T-slot screw joints instead of fingers")
	fs.BoolVar(&o.params.Features.Magnets, "magnets", false, "magnet pockets in the lid")

	// Sheet
	fs.Float64Var(&o.params.Render.Gap, "gap", box.DefaultGap, "space between panels (0 selects the default)")
	fs.Float64Var(&o.params.Render.Margin, "margin", box.DefaultMargin, "space around the sheet (0 selects the default)")
	fs.Float64Var(&o.params.Render.SheetWidth, "sheet-width", 0, "wrap rows at this width (0 = unlimited)")
	fs.IntVar(&o.params.Render.PanelsPerRow, "per-row", box.DefaultPanelsPerRow, "panels per row")
	fs.IntVar(&o.params.Render.Precision, "precision", box.DefaultPrecision, "decimal places in path data")

	// Rendering
	fs.StringVar(&o.render.Stroke, "stroke", pipeline.DefaultStroke, "cut line color")
	fs.Float64Var(&o.render.StrokeWidth, "stroke-width", pipeline.DefaultStrokeWidth, "cut line width")
	fs.BoolVar(&o.render.Unitless, "unitless", false, "omit mm units from the SVG size")
	fs.BoolVar(&o.render.Labels, "labels", false, "engrave panel names")
	fs.Float64Var(&o.render.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")

	cmd.MarkFlagsMutuallyExclusive("finger-width", "finger-count")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.Formats(), cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("lid", cobra.FixedCompletions([]string{"none", "flat", "lift-off"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return box.NewFactory(nil).Types(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runGenerate resolves parameters, runs the pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, o *generateOpts, changed func(string) bool) error {
	logger := loggerFromContext(ctx)

	f := defaultParams()
	if o.config != "" {
		var err error
		if f, err = config.Load(o.config); err != nil {
			return err
		}
		logger.Debug("loaded parameters", "file", o.config)
	}
	applyFlags(&f, o, changed)

	runner, err := c.newRunner(ctx, o.cache, o.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	if o.pick {
		t, err := pickBoxType(runner.Factory.Types(), f.Type)
		if err != nil {
			return err
		}
		if t == "" {
			printDetail("No selection made")
			return nil
		}
		f.Type = t
	}

	p, err := f.Params()
	if err != nil {
		return err
	}

	opts := o.render
	opts.Params = p
	opts.Formats = parseFormats(o.formats)
	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	paths, err := outputPaths(o.output, o.config, opts.Formats)
	if err != nil {
		return err
	}

	typ := string(p.WithDefaults().Type)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %s box...", typ))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if o.output == stdoutPath {
		_, err := os.Stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	prog := newProgress(logger)
	for _, format := range opts.Formats {
		path := paths[format]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	prog.done("wrote outputs", "files", len(opts.Formats))

	l := result.Layout
	printSuccess("Generated %s box %s", typ, styleDim.Render(l.ID.String()))
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(len(l.Panels), len(l.Joins()),
		geom.FormatNumber(l.ViewBox.Width, 2), geom.FormatNumber(l.ViewBox.Height, 2),
		result.CacheInfo.RenderHit)

	return nil
}

// applyFlags copies every flag the user set over the file values.
func applyFlags(f *config.File, o *generateOpts, changed func(string) bool) {
	src := o.params
	overrides := []struct {
		flag  string
		apply func()
	}{
		{"type", func() { f.Type = src.Type }},
		{"width", func() { f.Width = src.Width }},
		{"depth", func() { f.Depth = src.Depth }},
		{"height", func() { f.Height = src.Height }},
		{"thickness", func() { f.Thickness = src.Thickness }},
		{"kerf", func() { f.Kerf = src.Kerf }},
		{"clearance", func() { f.Clearance = src.Clearance }},
		{"corner-radius", func() { f.CornerRadius = src.CornerRadius }},
		{"lid", func() { f.Lid = src.Lid }},
		{"angle", func() { f.Angle = src.Angle }},
		{"finger-width", func() { f.Finger = config.Finger{Mode: config.FingerModeWidth, Width: o.fingerWidth} }},
		{"finger-count", func() { f.Finger = config.Finger{Mode: config.FingerModeCount, Count: o.fingerCount} }},
		{"handle", func() { f.Features.HandleHole = src.Features.HandleHole }},
		{"vents", func() { f.Features.VentPattern = src.Features.VentPattern }},
		{"flex-cuts", func() { f.Features.FlexCuts = src.Features.FlexCuts }},
		{"dovetail", func() { f.Features.DovetailJoints = src.Features.DovetailJoints }},
		{"screws", func() { f.Features.ScrewHoles = src.Features.ScrewHoles }},
		{"magnets", func() { f.Features.Magnets = src.Features.Magnets }},
		{"gap", func() { f.Render.Gap = src.Render.Gap }},
		{"margin", func() { f.Render.Margin = src.Render.Margin }},
		{"sheet-width", func() { f.Render.SheetWidth = src.Render.SheetWidth }},
		{"per-row", func() { f.Render.PanelsPerRow = src.Render.PanelsPerRow }},
		{"precision", func() { f.Render.Precision = src.Render.Precision }},
	}
	for _, ov := range overrides {
		if changed(ov.flag) {
			ov.apply()
		}
	}
}

// outputPaths maps each format to the file it is written to. A single
// format whose extension output already carries is written to output as is;
// otherwise output, or the parameter file name, is a base path.
func outputPaths(output, source string, formats []string) (map[string]string, error) {
	if output == stdoutPath {
		if len(formats) != 1 {
			return nil, errors.Configuration("output", "writing to stdout needs exactly one format, got %d", len(formats))
		}
		return map[string]string{formats[0]: stdoutPath}, nil
	}

	if len(formats) == 1 && output != "" && strings.HasSuffix(output, pipeline.FormatExtensions[formats[0]]) {
		return map[string]string{formats[0]: output}, nil
	}

	base := basePath(output, source)
	paths := make(map[string]string, len(formats))
	for _, format := range formats {
		paths[format] = base + pipeline.FormatExtensions[format]
	}
	return paths, nil
}

// basePath derives the base output path. If output is empty it is the
// parameter file without its extension, or "box". Known format extensions
// are stripped from output.
func basePath(output, source string) string {
	if output == "" {
		if source == "" {
			return "box"
		}
		return strings.TrimSuffix(source, filepath.Ext(source))
	}
	return strings.TrimSuffix(output, formatExt(output))
}

// formatExt returns the longest format extension path ends with, or "".
func formatExt(path string) string {
	best := ""
	for _, ext := range pipeline.FormatExtensions {
		if strings.HasSuffix(path, ext) && len(ext) > len(best) {
			best = ext
		}
	}
	return best
}
