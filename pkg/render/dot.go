package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mkuchta/orbit/pkg/menu"
)

// ToDOT converts a plan to Graphviz DOT format: the anchor as a central node
// with one edge per satellite, in placement order. Positions are pinned via
// pos attributes (points, y flipped since Graphviz y grows upward) so the
// neato engine reproduces the computed geometry.
func ToDOT(p menu.Plan) string {
	var buf bytes.Buffer
	buf.WriteString("graph menu {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  anchor [label=\"\", fillcolor=\"#3b6ea5\", pos=\"%.2f,%.2f!\"];\n",
		p.Center.X, -p.Center.Y)

	for i, pl := range p.Placements {
		label := pl.Label
		if label == "" {
			label = fmt.Sprintf("%d", i+1)
		}
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%.2f,%.2f!\"];\n",
			pl.ItemID, label, pl.Point.X, -pl.Point.Y)
	}

	buf.WriteString("\n")
	for _, pl := range p.Placements {
		fmt.Fprintf(&buf, "  anchor -- %q;\n", pl.ItemID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOT renders a DOT graph to SVG using Graphviz.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
