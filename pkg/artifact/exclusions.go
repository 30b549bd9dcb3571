package artifact

import (
	"slices"
	"sync"
)

// Placeholder coordinates that never denote real dependencies.
var (
	Dummy    = New("__dummy__", "__dummy__", "")
	DummyJPP = New("JPP/maven", "empty-dep", "")
)

// knownFalsePositives are artifacts that show up in descriptors but must not
// be treated as build dependencies.
var knownFalsePositives = []Artifact{
	New("javax.activation", "activation", ""),
	New("org.eclipse.jetty.orbit", "javax.activation", ""),
	New("org.apache.maven.wagon", "wagon-webdav", ""),
	New("org.apache.maven.wagon", "wagon-webdav-jackrabbit", ""),
}

// Exclusions is an immutable set of artifact patterns. Entries are stored
// with version and extension cleared and kept sorted by [Compare].
//
// An *Exclusions is safe for concurrent use. A nil *Exclusions is empty.
type Exclusions struct {
	entries []Artifact
}

// NewExclusions builds an exclusion set from arts.
func NewExclusions(arts ...Artifact) *Exclusions {
	return (&Exclusions{}).With(arts...)
}

// With returns a new set holding the receiver's entries plus arts.
// The receiver is unchanged.
func (e *Exclusions) With(arts ...Artifact) *Exclusions {
	entries := make([]Artifact, 0, e.Len()+len(arts))
	if e != nil {
		entries = append(entries, e.entries...)
	}
	for _, a := range arts {
		entries = append(entries, a.ClearVersionAndExtension())
	}
	slices.SortFunc(entries, Compare)
	return &Exclusions{entries: slices.Compact(entries)}
}

// Contains reports whether a matches an entry, ignoring version and extension.
func (e *Exclusions) Contains(a Artifact) bool {
	if e == nil {
		return false
	}
	_, found := slices.BinarySearchFunc(e.entries, a.ClearVersionAndExtension(), Compare)
	return found
}

// Len returns the number of entries.
func (e *Exclusions) Len() int {
	if e == nil {
		return 0
	}
	return len(e.entries)
}

// Artifacts returns the entries in sorted order.
func (e *Exclusions) Artifacts() []Artifact {
	if e == nil {
		return nil
	}
	return slices.Clone(e.entries)
}

// PlaceholderExclusions returns a set holding only [Dummy] and [DummyJPP].
// Configuration that replaces the default table starts from here.
func PlaceholderExclusions() *Exclusions {
	return NewExclusions(Dummy, DummyJPP)
}

// DefaultExclusions returns the process-wide default exclusion set: the
// placeholder coordinates plus a fixed table of known false positives.
var DefaultExclusions = sync.OnceValue(func() *Exclusions {
	return PlaceholderExclusions().With(knownFalsePositives...)
})
