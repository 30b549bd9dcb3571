package builddep

import (
	"encoding/json"

	"github.com/javapkg/builddep/pkg/artifact"
)

// Result is the default [Sink]: an insertion-ordered set of artifacts.
// It is not safe for concurrent use; give each Extract call its own Result.
type Result struct {
	set artifact.Set
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{}
}

// AddDependencyArtifact implements [Sink]. Duplicates are ignored.
func (r *Result) AddDependencyArtifact(a artifact.Artifact) {
	r.set.Add(a)
}

// Artifacts returns the collected artifacts in insertion order.
func (r *Result) Artifacts() []artifact.Artifact {
	return r.set.Artifacts()
}

// Sorted returns the collected artifacts ordered by [artifact.Compare].
func (r *Result) Sorted() []artifact.Artifact {
	return r.set.Sorted()
}

// Len returns the number of distinct artifacts.
func (r *Result) Len() int {
	return r.set.Len()
}

// Contains reports whether a was collected.
func (r *Result) Contains(a artifact.Artifact) bool {
	return r.set.Contains(a)
}

// Equal reports whether r and o hold the same artifacts, ignoring order.
func (r *Result) Equal(o *Result) bool {
	return r.set.Equal(&o.set)
}

// Merge appends the artifacts of o that r does not hold yet.
func (r *Result) Merge(o *Result) {
	for _, a := range o.Artifacts() {
		r.set.Add(a)
	}
}

// MarshalJSON encodes the result as an array in insertion order.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(&r.set)
}

var _ Sink = (*Result)(nil)
