package pom

import "github.com/javapkg/builddep/pkg/artifact"

// Project is a parsed project descriptor.
type Project struct {
	GroupID      string
	ArtifactID   string
	Version      string
	Packaging    string
	Parent       *Parent
	Dependencies []Dependency
	Build        Build
}

// Parent references the descriptor this project inherits from.
type Parent struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Dependency is a dependency declaration, either at project level or
// nested under a build plugin.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Type       string
	Classifier string
	Version    string
	Scope      string
	Optional   *bool // nil when not declared
}

// Build holds the build section of a descriptor.
type Build struct {
	Extensions []Extension
	Plugins    []Plugin
}

// Extension is a build extension declaration.
type Extension struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Plugin is a build plugin declaration. GroupID and Version may be empty.
type Plugin struct {
	GroupID      string
	ArtifactID   string
	Version      string
	Dependencies []Dependency
}

// Coordinate returns the project's own coordinate. GroupID and Version are
// inherited from the parent when the project does not declare them, and the
// packaging (default "jar") is used as extension.
func (p *Project) Coordinate() artifact.Artifact {
	groupID, version := p.GroupID, p.Version
	if p.Parent != nil {
		if groupID == "" {
			groupID = p.Parent.GroupID
		}
		if version == "" {
			version = p.Parent.Version
		}
	}
	return artifact.NewTyped(groupID, p.ArtifactID, p.Packaging, "", version)
}
