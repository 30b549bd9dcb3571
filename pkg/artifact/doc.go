// Package artifact defines artifact coordinates and the identity rules used
// to deduplicate and exclude them.
//
// # Coordinates
//
// An [Artifact] is the (groupId, artifactId, extension, classifier, version)
// tuple identifying a buildable unit. Constructors substitute defaults for
// blank fields: extension [DefaultExtension] and version [DefaultVersion].
// Two artifacts are equal when all five fields are equal; this is the
// identity used by [Set] for deduplication.
//
// The string form is groupId:artifactId[:extension[:classifier]]:version:
//
//	a, _ := artifact.Parse("junit:junit:4.13.2")
//	fmt.Println(a.Extension) // jar
//
// # Exclusions
//
// [Exclusions] is an immutable set of coordinate patterns that must never be
// reported as real dependencies. Membership ignores version and extension:
// entries are stored through [Artifact.ClearVersionAndExtension] and lookups
// clear the probe the same way.
//
// [DefaultExclusions] returns the process-wide default set. It is built on
// first use and is safe for concurrent reads.
package artifact
