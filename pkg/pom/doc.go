// Package pom reads Maven project descriptors.
//
// # Overview
//
// [Project] is the in-memory descriptor tree consumed by the build
// dependency extractor: an optional parent, ordered dependency declarations,
// and the build section's extensions and plugins (each plugin with its own
// dependency declarations).
//
// Absent string fields are empty. The dependency optional flag is a *bool so
// that an explicit <optional>false</optional> can be told apart from no
// declaration at all.
//
// # Parsing
//
//	p, err := pom.ParseFile("pom.xml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Coordinate())
//
// The reader trims all values and rejects descriptors with missing required
// coordinates, so that downstream code only ever sees well-formed trees.
// Properties such as ${project.version} are kept verbatim.
package pom
