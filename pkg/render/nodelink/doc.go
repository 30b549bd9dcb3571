// Package nodelink renders an extraction result as a node-link diagram.
//
// # Overview
//
// Each project is drawn as a root node with one arrow to every build
// dependency, in extraction order. Fill colors follow the artifact extension
// and dependencies without a declared version are drawn dashed.
//
// # Usage
//
//	dot := nodelink.ToDOT([]nodelink.Graph{{Project: project.Coordinate(), Deps: res.Artifacts()}}, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
