package box

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/fingerbox/pkg/edge"
	"github.com/matzehuels/fingerbox/pkg/errors"
)

// Builder produces the panels of one topology, in PanelOrder, from validated
// params. Panels are returned unplaced; the generator packs them.
type Builder interface {
	Build(p Params, edges *edge.Registry) ([]Panel, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(p Params, edges *edge.Registry) ([]Panel, error)

func (f BuilderFunc) Build(p Params, edges *edge.Registry) ([]Panel, error) {
	return f(p, edges)
}

// topology lifts a builder written against the shared assembly context.
func topology(fn func(b *builder) ([]Panel, error)) Builder {
	return BuilderFunc(func(p Params, edges *edge.Registry) ([]Panel, error) {
		return fn(newBuilder(p, edges))
	})
}

// Factory dispatches box types to their builders. It is populated at
// construction and read-only afterwards, so one Factory may serve concurrent
// generations.
type Factory struct {
	edges    *edge.Registry
	builders map[Type]Builder
}

// NewFactory returns a factory with the basic, angled, flex and tray
// topologies registered. Every generator it hands out cuts edges with styles
// from edges; a nil registry selects edge.Builtin.
func NewFactory(edges *edge.Registry) *Factory {
	if edges == nil {
		edges = edge.Builtin()
	}
	f := &Factory{edges: edges, builders: make(map[Type]Builder)}
	f.builders[Basic] = topology(buildBasic)
	f.builders[Angled] = topology(buildAngled)
	f.builders[Flex] = topology(buildFlex)
	f.builders[Tray] = topology(buildTray)
	return f
}

// Register adds a topology. It fails if the type is already registered.
func (f *Factory) Register(t Type, b Builder) error {
	if strings.TrimSpace(string(t)) == "" || b == nil {
		return errors.Configuration("type", "box type name and builder are required")
	}
	if _, ok := f.builders[t]; ok {
		return errors.Configuration("type", "box type %q is already registered", t)
	}
	f.builders[t] = b
	return nil
}

// Types returns the registered box types in sorted order.
func (f *Factory) Types() []string {
	out := make([]string, 0, len(f.builders))
	for t := range f.builders {
		out = append(out, string(t))
	}
	slices.Sort(out)
	return out
}

// Edges returns the edge style registry the factory cuts with.
func (f *Factory) Edges() *edge.Registry { return f.edges }

// Generator returns the generator for a box type.
func (f *Factory) Generator(t Type) (*Generator, error) {
	b, ok := f.builders[t]
	if !ok {
		return nil, errors.UnknownBoxType(string(t), f.Types())
	}
	return &Generator{typ: t, build: b, edges: f.edges}, nil
}

// Generate is shorthand for looking up the generator of p.Type (basic when
// empty) and running it.
func (f *Factory) Generate(p Params) (*Layout, error) {
	p = p.WithDefaults()
	g, err := f.Generator(p.Type)
	if err != nil {
		return nil, err
	}
	return g.Generate(p)
}

// Generator builds layouts for one box type. It holds no mutable state.
type Generator struct {
	typ   Type
	build Builder
	edges *edge.Registry
}

// Type returns the box type the generator builds.
func (g *Generator) Type() Type { return g.typ }

// Generate validates p and builds its layout. p.Type is ignored in favour of
// the generator's own type. On error no layout is returned.
func (g *Generator) Generate(p Params) (*Layout, error) {
	p = p.WithDefaults()
	p.Type = g.typ
	if err := p.Validate(); err != nil {
		return nil, err
	}

	panels, err := g.build.Build(p, g.edges)
	if err != nil {
		return nil, err
	}
	if want := expectedPanels(p); len(panels) != want {
		return nil, errors.New(errors.ErrCodeInternal, "%s builder produced %d panels, want %d", g.typ, len(panels), want)
	}
	for _, pn := range panels {
		if pn.Path.Empty() {
			return nil, errors.New(errors.ErrCodeInternal, "%s builder produced an empty %s outline", g.typ, pn.Name)
		}
	}
	return newLayout(p, panels), nil
}

func expectedPanels(p Params) int {
	if p.HasTop() {
		return 6
	}
	return 5
}

// String implements fmt.Stringer for log output.
func (g *Generator) String() string {
	return fmt.Sprintf("generator(%s)", g.typ)
}
