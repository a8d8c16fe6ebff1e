package edge

import (
	"slices"
	"strings"

	"github.com/matzehuels/fingerbox/pkg/errors"
)

// Registry maps style names to implementations.
type Registry struct {
	styles map[string]Style
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{styles: make(map[string]Style)}
}

// Builtin returns a registry with every built-in style registered.
func Builtin() *Registry {
	r := NewRegistry()
	r.mustRegister(Finger, StyleFunc(finger))
	r.mustRegister(Flex, StyleFunc(flex))
	r.mustRegister(Dovetail, StyleFunc(dovetail))
	r.mustRegister(Screw, StyleFunc(screw))
	r.mustRegister(Plain, StyleFunc(plain))
	return r
}

// Register adds a style under name. Names are case-sensitive and must be
// unique within the registry.
func (r *Registry) Register(name string, s Style) error {
	if strings.TrimSpace(name) == "" {
		return errors.Configuration("edge_style", "edge style name is required")
	}
	if s == nil {
		return errors.Configuration("edge_style", "edge style %q has no implementation", name)
	}
	if _, ok := r.styles[name]; ok {
		return errors.Configuration("edge_style", "edge style %q is already registered", name)
	}
	r.styles[name] = s
	return nil
}

func (r *Registry) mustRegister(name string, s Style) {
	if err := r.Register(name, s); err != nil {
		panic(err)
	}
}

// Lookup returns the style registered under name.
func (r *Registry) Lookup(name string) (Style, error) {
	s, ok := r.styles[name]
	if !ok {
		return nil, errors.Configuration("edge_style", "unknown edge style %q (available: %s)",
			name, strings.Join(r.Names(), ", "))
	}
	return s, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Names returns the registered style names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
