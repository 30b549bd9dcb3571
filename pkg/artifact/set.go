package artifact

import (
	"encoding/json"
	"slices"
)

// Set is an insertion-ordered set of artifacts using full coordinate equality.
// The zero value is ready to use. A Set is not safe for concurrent mutation.
type Set struct {
	items []Artifact
	index map[Artifact]struct{}
}

// NewSet returns a set holding arts, in order, without duplicates.
func NewSet(arts ...Artifact) *Set {
	s := &Set{}
	for _, a := range arts {
		s.Add(a)
	}
	return s
}

// Add inserts a and reports whether it was not already present.
func (s *Set) Add(a Artifact) bool {
	if s.index == nil {
		s.index = make(map[Artifact]struct{})
	}
	if _, ok := s.index[a]; ok {
		return false
	}
	s.index[a] = struct{}{}
	s.items = append(s.items, a)
	return true
}

// Contains reports whether a is in the set.
func (s *Set) Contains(a Artifact) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[a]
	return ok
}

// Len returns the number of artifacts.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Artifacts returns the artifacts in insertion order.
func (s *Set) Artifacts() []Artifact {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// Sorted returns the artifacts ordered by [Compare].
func (s *Set) Sorted() []Artifact {
	out := s.Artifacts()
	slices.SortFunc(out, Compare)
	return out
}

// Equal reports whether s and o hold the same artifacts, ignoring order.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, a := range s.Artifacts() {
		if !o.Contains(a) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as an array in insertion order.
func (s *Set) MarshalJSON() ([]byte, error) {
	items := s.Artifacts()
	if items == nil {
		items = []Artifact{}
	}
	return json.Marshal(items)
}
