package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/edge"
	"github.com/matzehuels/fingerbox/pkg/errors"
	"github.com/matzehuels/fingerbox/pkg/geom"
)

// AssemblyDOT describes how the panels of l fit together as a Graphviz DOT
// graph: one node per panel and one edge per jointed side pair, labelled
// with the sides and the edge style.
func AssemblyDOT(l *box.Layout) string {
	var buf bytes.Buffer
	buf.WriteString("graph assembly {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, p := range l.Panels {
		label := fmt.Sprintf("%s\n%s x %s", p.Name, geom.FormatNumber(p.NominalW, 2), geom.FormatNumber(p.NominalH, 2))
		fmt.Fprintf(&buf, "  %q [label=%q];\n", p.Name, label)
	}

	buf.WriteString("\n")
	for _, j := range l.Joins() {
		label := fmt.Sprintf("%s/%s", box.SideNames[j.ASide], box.SideNames[j.BSide])
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if j.Style != edge.Finger {
			attrs = append(attrs, fmt.Sprintf("xlabel=%q", j.Style))
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", j.A, j.B, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderAssembly renders the assembly graph of l to SVG using Graphviz.
func RenderAssembly(ctx context.Context, l *box.Layout) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(AssemblyDOT(l)))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse assembly graph")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render assembly graph")
	}
	return buf.Bytes(), nil
}
