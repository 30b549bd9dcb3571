package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/javapkg/builddep/pkg/artifact"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed puts extension, classifier and version on separate label
	// lines. When false, only the coordinate string is shown.
	Detailed bool
}

// fill colors by extension; anything else is white.
var fills = map[string]string{
	"pom": "lightyellow",
	"war": "lightblue",
	"ear": "lightblue",
}

// Graph is one project and the build dependencies extracted from it.
type Graph struct {
	Project artifact.Artifact
	Deps    []artifact.Artifact
}

// ToDOT converts extraction results to Graphviz DOT format. Each project
// becomes a root node with an edge to each of its dependencies, in
// extraction order. An artifact shared by several projects is drawn once.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(graphs []Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=1.0;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	seen := make(map[artifact.Artifact]bool)
	for _, g := range graphs {
		if !seen[g.Project] {
			seen[g.Project] = true
			fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,bold\", fillcolor=lightgrey];\n", g.Project.String(), fmtLabel(g.Project, opts.Detailed))
		}
	}
	for _, g := range graphs {
		for _, a := range g.Deps {
			if seen[a] {
				continue
			}
			seen[a] = true
			fmt.Fprintf(&buf, "  %q [%s];\n", a.String(), strings.Join(fmtAttrs(a, opts.Detailed), ", "))
		}
	}

	buf.WriteString("\n")
	for _, g := range graphs {
		for _, a := range g.Deps {
			fmt.Fprintf(&buf, "  %q -> %q;\n", g.Project.String(), a.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(a artifact.Artifact, detailed bool) string {
	if !detailed {
		return a.String()
	}

	parts := []string{a.Key(), "extension: " + a.Extension}
	if a.Classifier != "" {
		parts = append(parts, "classifier: "+a.Classifier)
	}
	parts = append(parts, "version: "+a.Version)
	return strings.Join(parts, "\n")
}

func fmtAttrs(a artifact.Artifact, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(a, detailed))}
	if fill, ok := fills[a.Extension]; ok {
		attrs = append(attrs, "fillcolor="+fill)
	}
	if a.HasDefaultVersion() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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

// normalizeViewBox rewrites the root svg tag so the image scales with its
// container: width and height follow the viewBox instead of Graphviz's pt units.
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
