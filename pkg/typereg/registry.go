// Package typereg maps declared dependency types to artifact coordinates.
//
// A Maven dependency declares a type (jar, test-jar, pom, ...) and an optional
// classifier. The file that actually backs the dependency is identified by an
// extension and classifier, which the [Registry] derives from the declared
// type. Types with no registered [Handler] fall back to using the type as the
// extension and passing the classifier through unchanged, so resolution is
// total over all type strings.
package typereg

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/javapkg/builddep/pkg/artifact"
)

// DefaultType is assumed when a dependency declares no type.
const DefaultType = "jar"

// Resolver builds the coordinate of a typed dependency declaration.
// The optional flag is nil when the declaration does not state it.
type Resolver interface {
	Resolve(groupID, artifactID, typ, classifier, version string, optional *bool) artifact.Artifact
}

// ResolverFunc adapts a function to [Resolver].
type ResolverFunc func(groupID, artifactID, typ, classifier, version string, optional *bool) artifact.Artifact

// Resolve calls f.
func (f ResolverFunc) Resolve(groupID, artifactID, typ, classifier, version string, optional *bool) artifact.Artifact {
	return f(groupID, artifactID, typ, classifier, version, optional)
}

// Handler describes how a dependency type maps onto a file.
type Handler struct {
	Type       string `json:"type"`                 // Declared type name
	Extension  string `json:"extension"`            // File extension of the artifact
	Classifier string `json:"classifier,omitempty"` // Implied classifier, if any
}

var defaultHandlers = []Handler{
	{Type: "pom", Extension: "pom"},
	{Type: "jar", Extension: "jar"},
	{Type: "maven-plugin", Extension: "jar"},
	{Type: "ejb", Extension: "jar"},
	{Type: "ejb-client", Extension: "jar", Classifier: "client"},
	{Type: "test-jar", Extension: "jar", Classifier: "tests"},
	{Type: "java-source", Extension: "jar", Classifier: "sources"},
	{Type: "javadoc", Extension: "jar", Classifier: "javadoc"},
	{Type: "bundle", Extension: "jar"},
	{Type: "war", Extension: "war"},
	{Type: "ear", Extension: "ear"},
	{Type: "rar", Extension: "rar"},
}

// Registry is an immutable table of type handlers.
// It is safe for concurrent use.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns a registry holding handlers. Later entries for the same
// type replace earlier ones.
func NewRegistry(handlers ...Handler) *Registry {
	return (&Registry{}).With(handlers...)
}

// With returns a new registry with handlers added to the receiver's.
func (r *Registry) With(handlers ...Handler) *Registry {
	next := &Registry{handlers: make(map[string]Handler, r.Len()+len(handlers))}
	if r != nil {
		maps.Copy(next.handlers, r.handlers)
	}
	for _, h := range handlers {
		h.Type = strings.TrimSpace(h.Type)
		if h.Type == "" {
			continue
		}
		if strings.TrimSpace(h.Extension) == "" {
			h.Extension = h.Type
		}
		next.handlers[h.Type] = h
	}
	return next
}

// Default returns the registry of the standard Maven packaging types.
var Default = sync.OnceValue(func() *Registry {
	return NewRegistry(defaultHandlers...)
})

// Lookup returns the handler registered for typ.
func (r *Registry) Lookup(typ string) (Handler, bool) {
	if r == nil {
		return Handler{}, false
	}
	h, ok := r.handlers[typ]
	return h, ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.handlers)
}

// Handlers returns all handlers ordered by type name.
func (r *Registry) Handlers() []Handler {
	if r == nil {
		return nil
	}
	out := slices.Collect(maps.Values(r.handlers))
	slices.SortFunc(out, func(a, b Handler) int { return strings.Compare(a.Type, b.Type) })
	return out
}

// Resolve implements [Resolver].
//
// A blank type is treated as [DefaultType]. A declared classifier takes
// precedence over the handler's implied one. The optional flag does not
// affect the coordinate.
func (r *Registry) Resolve(groupID, artifactID, typ, classifier, version string, optional *bool) artifact.Artifact {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		typ = DefaultType
	}
	classifier = strings.TrimSpace(classifier)

	extension := typ
	if h, ok := r.Lookup(typ); ok {
		extension = h.Extension
		if classifier == "" {
			classifier = h.Classifier
		}
	}
	return artifact.NewTyped(groupID, artifactID, extension, classifier, version)
}

var _ Resolver = (*Registry)(nil)
