package pipeline

import (
	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/errors"
)

// =============================================================================
// Layout Generation
// =============================================================================

// Generate builds the layout for p with f. A panic inside a builder is
// returned as an internal error instead of crashing the host.
func Generate(f *box.Factory, p box.Params) (l *box.Layout, err error) {
	defer func() {
		if r := recover(); r != nil {
			l = nil
			err = errors.New(errors.ErrCodeInternal, "generating %s box: %v", p.WithDefaults().Type, r)
		}
	}()
	return f.Generate(p)
}
