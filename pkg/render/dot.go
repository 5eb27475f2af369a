package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/assetgraft/pkg/asset"
)

// Options configures dependency graph rendering.
type Options struct {
	// Imports adds a node per import and the edges that reach them.
	// When false, edges to imports are dropped.
	Imports bool
	// Detailed adds the export kind and class to node labels.
	Detailed bool
}

// edge styles per ordering list
const (
	styleCBS   = "solid"
	styleSBC   = "dashed"
	styleCBC   = "dotted"
	styleActor = "bold"
)

// DOT converts the export dependency graph of g to Graphviz DOT source.
// The result can be rendered using [SVG].
func DOT(g *asset.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i := range g.Exports {
		x := asset.ExportAt(i)
		e := &g.Exports[i]
		label := x.String() + " " + name(g, e.ObjectName)
		if opts.Detailed {
			label += fmt.Sprintf("\n%s\nclass: %s", e.Kind, ref(g, e.Class))
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if e.Kind == asset.ExportLevel {
			attrs = append(attrs, "fillcolor=lightyellow")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(x), strings.Join(attrs, ", "))
	}
	if opts.Imports {
		for i := range g.Imports {
			x := asset.ImportAt(i)
			label := x.String() + " " + name(g, g.Imports[i].ObjectName)
			fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, fillcolor=lightgrey];\n", nodeID(x), label)
		}
	}

	buf.WriteString("\n")
	for i := range g.Exports {
		from := asset.ExportAt(i)
		e := &g.Exports[i]
		writeEdges(&buf, g, from, e.CreateBeforeSerialization, styleCBS, opts)
		writeEdges(&buf, g, from, e.SerializationBeforeCreate, styleSBC, opts)
		writeEdges(&buf, g, from, e.CreateBeforeCreate, styleCBC, opts)
		if e.Kind == asset.ExportLevel {
			writeEdges(&buf, g, from, e.Actors, styleActor, opts)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeEdges(buf *bytes.Buffer, g *asset.Graph, from asset.Index, to []asset.Index, style string, opts Options) {
	for _, x := range to {
		if !g.Resolves(x) || (x.IsImport() && !opts.Imports) {
			continue
		}
		fmt.Fprintf(buf, "  %q -> %q [style=%s];\n", nodeID(from), nodeID(x), style)
	}
}

func nodeID(x asset.Index) string {
	if x.IsImport() {
		return "import" + strconv.Itoa(x.Position()+1)
	}
	return "export" + strconv.Itoa(x.Position()+1)
}

// SVG renders DOT source to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-sized svg element with one
// that scales from a zero-origin viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
