// Package pkg provides the libraries behind builddep, a tool that lists the
// artifacts needed to build a Maven project.
//
// # Overview
//
// A Maven project descriptor declares many relationships: a parent, runtime
// and test dependencies, build extensions, plugins and plugin dependencies.
// Only some of them are needed at build time. builddep reads the descriptor
// and reports those, skipping plugins the build runs implicitly and a table
// of known false positives.
//
// # Architecture
//
// The typical data flow:
//
//	pom.xml
//	   ↓
//	[pom] package (descriptor tree)
//	   ↓
//	[builddep] package (policy + extraction)
//	   ↓
//	[builddep.Result] (ordered, deduplicated artifacts)
//	   ↓
//	text / JSON / DOT / SVG output
//
// # Quick Start
//
//	import (
//	    "github.com/javapkg/builddep/pkg/builddep"
//	    "github.com/javapkg/builddep/pkg/pom"
//	)
//
//	project, err := pom.ParseFile("pom.xml")
//	if err != nil {
//	    return err
//	}
//	res := builddep.New(builddep.Options{}).ExtractAll(project)
//	for _, a := range res.Artifacts() {
//	    fmt.Println(a)
//	}
//
// # Packages
//
//   - [artifact]: coordinates, ordered artifact sets and exclusion sets
//   - [typereg]: dependency type to extension/classifier mapping
//   - [pom]: descriptor reader
//   - [builddep]: extraction policy and extractor
//   - [config]: TOML policy overrides
//   - [render/nodelink]: DOT and SVG diagrams of a result
//   - [errors]: coded errors shared by all packages
//   - [buildinfo]: version information set at build time
//
// [artifact]: https://pkg.go.dev/github.com/javapkg/builddep/pkg/artifact
// [typereg]: https://pkg.go.dev/github.com/javapkg/builddep/pkg/typereg
// [pom]: https://pkg.go.dev/github.com/javapkg/builddep/pkg/pom
// [builddep]: https://pkg.go.dev/github.com/javapkg/builddep/pkg/builddep
// [builddep.Result]: https://pkg.go.dev/github.com/javapkg/builddep/pkg/builddep#Result
// [config]: https://pkg.go.dev/github.com/javapkg/builddep/pkg/config
// [render/nodelink]: https://pkg.go.dev/github.com/javapkg/builddep/pkg/render/nodelink
// [errors]: https://pkg.go.dev/github.com/javapkg/builddep/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/javapkg/builddep/pkg/buildinfo
package pkg
