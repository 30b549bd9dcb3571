// Package builddep derives the external artifacts needed to build a project.
//
// # Overview
//
// An [Extractor] walks a parsed [pom.Project] once, in descriptor order, and
// reports every relationship that requires an artifact at build time to a
// [Sink]:
//
//   - the parent descriptor, as a pom artifact
//   - dependencies in build scopes (unspecified, compile, provided, test)
//   - build extensions
//   - build plugins, except the common lifecycle plugins of [Policy]
//   - plugin dependencies in plugin scopes (unspecified, compile, runtime)
//
// Blank fields are replaced by their defaults before any comparison: plugin
// groupId becomes [DefaultPluginGroup] and unspecified versions become
// [artifact.DefaultVersion]. Coordinates matching the exclusion set are
// dropped regardless of which relationship declared them.
//
// # Usage
//
//	x := builddep.New(builddep.Options{})
//	res := builddep.NewResult()
//	x.Extract(project, res)
//	for _, a := range res.Artifacts() {
//	    fmt.Println(a)
//	}
//
// The extractor does not resolve versions, fetch artifacts, or follow
// transitive dependencies. It never fails on a well-formed descriptor.
//
// # Concurrency
//
// An Extractor is immutable after [New] and may be shared by goroutines as
// long as each Extract call is given its own sink.
package builddep
