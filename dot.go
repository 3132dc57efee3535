package vellum

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures tree dumps.
type DOTOptions struct {
	// Bounds includes each node's resolved bound in its label.
	Bounds bool
}

// ToDOT converts the tree under root to Graphviz DOT. Component nodes are
// drawn as dashed boxes around their view.
func ToDOT(root *Node, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph vellum {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=12];\n")
	buf.WriteString("\n")

	ids := map[*Node]string{}
	var walk func(n *Node)
	walk = func(n *Node) {
		id := fmt.Sprintf("n%d", len(ids))
		ids[n] = id
		fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(dotAttrs(n, opts), ", "))
		for _, c := range n.Children() {
			walk(c)
			fmt.Fprintf(&buf, "  %s -> %s;\n", id, ids[c])
		}
	}
	walk(root)

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(n *Node, opts DOTOptions) string {
	var kind string
	switch {
	case n.comp != nil:
		kind = fmt.Sprintf("component #%d", n.comp.ID())
	case n.shape != nil:
		kind = n.shape.Kind().String()
	}
	parts := []string{kind}
	if n.Name != "" {
		parts[0] = n.Name + " (" + kind + ")"
	}
	if t, ok := n.shape.(*Text); ok {
		parts = append(parts, fmt.Sprintf("%q", t.Content))
	}
	if opts.Bounds {
		b := n.bound
		parts = append(parts, fmt.Sprintf("%.1f,%.1f %.1fx%.1f", b.X, b.Y, b.Width, b.Height))
	}
	if len(n.listeners) > 0 {
		kinds := make([]string, len(n.listeners))
		for i, l := range n.listeners {
			kinds[i] = l.kind.String()
		}
		parts = append(parts, "on: "+strings.Join(kinds, ","))
	}
	return strings.Join(parts, "\n")
}

func dotAttrs(n *Node, opts DOTOptions) []string {
	attrs := []string{fmt.Sprintf("label=%q", dotLabel(n, opts))}
	switch {
	case n.comp != nil:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	case n.shape != nil && n.shape.Kind() == ShapeGroup:
		attrs = append(attrs, "shape=folder")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("vellum: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("vellum: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("vellum: render DOT: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderTreeSVG dumps the tree under root straight to SVG.
func RenderTreeSVG(ctx context.Context, root *Node, opts DOTOptions) ([]byte, error) {
	return RenderSVG(ctx, ToDOT(root, opts))
}
